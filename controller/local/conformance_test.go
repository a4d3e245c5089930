package local

import (
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/yonasBSD/ronin-post-ex/resource"
	"github.com/yonasBSD/ronin-post-ex/resourcetest"
)

func TestFileConformance(t *testing.T) {
	resourcetest.TestFile(t, resourcetest.FileContract{
		NewController: func(t *testing.T, files map[string][]byte) resource.Controller {
			fs := memfs.New()
			for path, contents := range files {
				if err := util.WriteFile(fs, path, contents, 0644); err != nil {
					t.Fatalf("seeding %s: %v", path, err)
				}
			}
			return New(WithFilesystem(fs))
		},
		Writable: true,
		Statable: true,
	})
}

func TestCommandConformance(t *testing.T) {
	resourcetest.TestCommand(t, resourcetest.CommandContract{
		NewController: func(t *testing.T) resource.Controller {
			return New()
		},
		Echo: func(lines []string) (string, []string) {
			if len(lines) == 0 {
				return "true", nil
			}
			var sb strings.Builder
			for i, line := range lines {
				if i > 0 {
					sb.WriteString("; ")
				}
				sb.WriteString("echo " + line)
			}
			return "sh", []string{"-c", sb.String()}
		},
		Input: true,
	})
}
