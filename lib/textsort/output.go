package textsort

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/safeopen"
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenOutput opens the path for writing, truncating it. The file must be
// beneath its parent directory, with no symlink escaping it.
// An empty path or StdinName writes to the stdout.
func OpenOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == StdinName {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return safeopen.OpenFileBeneath(
		filepath.Dir(abs),
		filepath.Base(abs),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
		0o644,
	)
}
