package md2tmpl

import "github.com/alnah/go-md2tmpl/internal/fileutil"

// TextReader reads whole text files.
type TextReader interface {
	ReadText(path string) (string, error)
}

// TextWriter writes whole text files, replacing existing content.
type TextWriter interface {
	WriteText(path, content string) error
}

// FileSystem is the file I/O the Driver needs.
type FileSystem interface {
	TextReader
	TextWriter
}

// OSFileSystem implements FileSystem on the local disk.
// Writes are atomic: a failed write leaves any previous output intact.
type OSFileSystem struct{}

// Compile-time interface implementation check.
var _ FileSystem = OSFileSystem{}

// ReadText reads path as UTF-8 text.
func (OSFileSystem) ReadText(path string) (string, error) {
	return fileutil.ReadText(path)
}

// WriteText writes content to path.
func (OSFileSystem) WriteText(path, content string) error {
	return fileutil.WriteFileAtomic(path, content)
}
