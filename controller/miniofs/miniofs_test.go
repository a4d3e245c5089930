package miniofs

import (
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonasBSD/ronin-post-ex/errors"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config with credentials",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "loot",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: false,
		},
		{
			name: "valid config with client",
			config: Config{
				Client: &minio.Client{},
				Bucket: "loot",
			},
			wantErr: false,
		},
		{
			name: "missing bucket",
			config: Config{
				Endpoint:  "localhost:9000",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
		},
		{
			name: "missing endpoint without client",
			config: Config{
				Bucket:    "loot",
				AccessKey: "minioadmin",
				SecretKey: "minioadmin",
			},
			wantErr: true,
		},
		{
			name: "missing access key without client",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "loot",
				SecretKey: "minioadmin",
			},
			wantErr: true,
		},
		{
			name: "missing secret key without client",
			config: Config{
				Endpoint:  "localhost:9000",
				Bucket:    "loot",
				AccessKey: "minioadmin",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.CodeInvalidConfig))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidConfig))
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"", "/etc/hostname", "etc/hostname"},
		{"", "etc/hostname", "etc/hostname"},
		{"loot/host1", "/etc/hostname", "loot/host1/etc/hostname"},
		{"loot", "/a/../b", "loot/b"},
	}

	for _, tt := range tests {
		c := &Controller{prefix: tt.prefix}
		assert.Equal(t, tt.want, c.key(tt.path), "prefix=%q path=%q", tt.prefix, tt.path)
	}
}
