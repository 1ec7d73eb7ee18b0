package textsort

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sorted.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	w, err := OpenOutput(path)
	require.NoError(t, err)
	_, err = io.WriteString(w, "a\nb\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", string(content))

	for _, p := range []string{"", StdinName} {
		w, err = OpenOutput(p)
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}

	_, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "sorted.txt"))
	require.Error(t, err)
}
