package textsort

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/benz9527/xtree/xlog"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "¿Dónde?\nárbol\nzeta\n")
	b := writeFile(t, dir, "b.txt", "Árbol\r\nbeta\nzeta")
	empty := writeFile(t, dir, "empty.txt", "")

	var logs bytes.Buffer
	s, err := NewSorter()
	require.NoError(t, err)
	l, err := NewLoader(s,
		WithLoaderWorkers(2),
		WithLoaderLogger(xlog.NewXLogger(xlog.WithXLoggerWriter(&logs), xlog.WithXLoggerLevel(xlog.LogLevelInfo))),
	)
	require.NoError(t, err)
	defer l.Release()

	err = l.Load(context.TODO(),
		FileSource(a),
		FileSource(b),
		FileSource(empty),
		ReaderSource("mem", strings.NewReader("alfa\n")),
	)
	require.NoError(t, err)
	require.Equal(t,
		[]string{"alfa", "Árbol", "árbol", "beta", "¿Dónde?", "zeta", "zeta"},
		s.Lines(false),
	)
	require.Equal(t, int64(4), s.Summary().Sources)
	require.Equal(t, 4, strings.Count(logs.String(), "input loaded"))
}

func TestLoaderFailures(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "b\na\n")
	missing := filepath.Join(dir, "missing.txt")

	s, err := NewSorter()
	require.NoError(t, err)
	l, err := NewLoader(s)
	require.NoError(t, err)
	defer l.Release()

	err = l.Load(context.TODO(), FileSource(a), FileSource(missing))
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 1)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "missing.txt")
	// the readable source is still loaded
	require.Equal(t, []string{"a", "b"}, s.Lines(false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = l.Load(ctx, FileSource(a))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, int64(2), s.Len())
}

func TestNewLoader(t *testing.T) {
	_, err := NewLoader(nil)
	require.ErrorIs(t, err, ErrNoSorter)

	s, err := NewSorter()
	require.NoError(t, err)
	_, err = NewLoader(s, WithLoaderWorkers(0))
	require.Error(t, err)
	_, err = NewLoader(s, WithLoaderMaxLine(-1))
	require.Error(t, err)
}

func TestLoaderMaxLine(t *testing.T) {
	s, err := NewSorter()
	require.NoError(t, err)
	l, err := NewLoader(s, WithLoaderMaxLine(8))
	require.NoError(t, err)
	defer l.Release()

	err = l.Load(context.TODO(),
		ReaderSource("short", strings.NewReader("abc\nde\n")),
		ReaderSource("long", strings.NewReader("abc\nabcdefghijklmnop\n")),
	)
	require.ErrorIs(t, err, bufio.ErrTooLong)
	require.Contains(t, err.Error(), "long")
	require.Equal(t, []string{"abc", "de"}, s.Lines(false))
}

func TestFileSources(t *testing.T) {
	sources := FileSources()
	require.Len(t, sources, 1)
	require.Equal(t, StdinName, sources[0].Name)

	sources = FileSources("a.txt", " ", "-", "b.txt")
	require.Len(t, sources, 3)
	require.Equal(t, []string{"a.txt", StdinName, "b.txt"}, []string{sources[0].Name, sources[1].Name, sources[2].Name})

	sources = FileSources("-", "a.txt", "-", "-")
	require.Len(t, sources, 2)
	require.Equal(t, []string{StdinName, "a.txt"}, []string{sources[0].Name, sources[1].Name})
}
