package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	md2tmpl "github.com/alnah/go-md2tmpl"
)

// testEnv returns an Environment on the real file system with captured
// output and an empty process environment.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		FS:     md2tmpl.OSFileSystem{},
		Getenv: func(key string) string { return vars[key] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// writeFiles creates files under dir and returns dir.
func writeFiles(t *testing.T, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// homePage writes a one-fragment page and a YAML config pointing at it.
// Returns the config path and the page directory.
func homePage(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	pageDir := filepath.Join(root, "home")
	writeFiles(t, pageDir, map[string]string{
		"home.template.html": "<main></main>\n",
		"home.intro.md":      "# Hello\n\nSee [docs](/docs).\n",
	})

	cfg := "pages:\n  - dir: " + pageDir + "\n    prefix: home\n    fragments: [intro]\n"
	writeFiles(t, root, map[string]string{"pages.yaml": cfg})
	return filepath.Join(root, "pages.yaml"), pageDir
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
