package md2tmpl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
)

// memFS is an in-memory FileSystem that records every access.
type memFS struct {
	files    map[string]string
	accessed []string
	writeErr error
}

func newMemFS(files map[string]string) *memFS {
	if files == nil {
		files = make(map[string]string)
	}
	return &memFS{files: files}
}

var _ FileSystem = (*memFS)(nil)

func (m *memFS) ReadText(path string) (string, error) {
	m.accessed = append(m.accessed, "read "+path)
	content, ok := m.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return content, nil
}

func (m *memFS) WriteText(path, content string) error {
	m.accessed = append(m.accessed, "write "+path)
	if m.writeErr != nil {
		return m.writeErr
	}
	m.files[path] = content
	return nil
}

func (m *memFS) paths() []string {
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

var errDiskFull = errors.New("disk full")

// stubRenderer renders markdown as "\n<r>markdown</r>\n" and records calls.
type stubRenderer struct {
	calls []string
	err   error
}

var _ Renderer = (*stubRenderer)(nil)

func (s *stubRenderer) Render(_ context.Context, markdown string) (string, error) {
	s.calls = append(s.calls, markdown)
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("\n<r>%s</r>\n", markdown), nil
}
