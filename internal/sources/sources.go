// internal/sources/sources.go

// Package sources opens named input sources for a concatenation run. It is
// the only place that knows about the filesystem; the engine sees plain
// readers.
package sources

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// NotFoundError marks a source path that does not exist. The app layer
// reports it differently from generic I/O failure.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return e.Path + ": No such file or directory"
}

// IsNotFound reports whether err carries a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Open resolves a command-line operand to a reader. "-" means the supplied
// stdin stream; the returned Close is a no-op for it.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}
	return fh, nil
}
