//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/freedance-video/workscheck/internal/config"
)

// testProject is an isolated site checkout with optional works.json and images/.
type testProject struct {
	Dir string
}

// setupProject creates an empty project directory and clears WORKSCHECK_*
// variables so the host environment cannot leak into settings.
func setupProject(t *testing.T) *testProject {
	t.Helper()
	for _, key := range []string{"WORKSCHECK_DIR", "WORKSCHECK_MANIFEST_FILE", "WORKSCHECK_IMAGES_DIR", "WORKSCHECK_EXTENSIONS", "WORKSCHECK_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return &testProject{Dir: t.TempDir()}
}

func (p *testProject) writeWorks(t *testing.T, content string) {
	t.Helper()
	writeFile(t, filepath.Join(p.Dir, "works.json"), content)
}

func (p *testProject) writeImage(t *testing.T, name string, size int) {
	t.Helper()
	writeFile(t, filepath.Join(p.Dir, "images", name), string(make([]byte, size)))
}

func (p *testProject) settings(t *testing.T) config.Settings {
	t.Helper()
	s, err := config.Load(config.LoadOptions{
		Dir:       p.Dir,
		Overrides: map[string]interface{}{config.KeyColor: config.ColorNever},
	})
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return s
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
