package textsort

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/observability"
	"github.com/benz9527/xtree/xlog"
)

// StdinName is the file name standing for the stdin.
const StdinName = "-"

// Lines longer than this fail the load of their source.
const defaultMaxLineSize = 16 * 1024 * 1024

var ErrNoSorter = errors.New("[textsort] loader without sorter")

// Source is one input of the sort.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource opens the file lazily, the StdinName reads the stdin.
func FileSource(path string) Source {
	if path == StdinName {
		return ReaderSource(StdinName, os.Stdin)
	}
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(r), nil
		},
	}
}

// FileSources falls back to the stdin if there is no path.
// The stdin is read once, at its first position.
func FileSources(paths ...string) []Source {
	stdinSeen := false
	paths = lo.Filter(paths, func(p string, _ int) bool {
		if p == StdinName {
			if stdinSeen {
				return false
			}
			stdinSeen = true
		}
		return len(strings.TrimSpace(p)) > 0
	})
	if len(paths) == 0 {
		return []Source{FileSource(StdinName)}
	}
	return lo.Map(paths, func(p string, _ int) Source {
		return FileSource(p)
	})
}

type LoaderOption func(*Loader) error

func WithLoaderWorkers(workers int) LoaderOption {
	return func(l *Loader) error {
		if workers <= 0 {
			return fmt.Errorf("[textsort] invalid loader workers %d", workers)
		}
		l.workers = workers
		return nil
	}
}

// WithLoaderMaxLine bounds the line size in bytes.
func WithLoaderMaxLine(size int) LoaderOption {
	return func(l *Loader) error {
		if size <= 0 {
			return fmt.Errorf("[textsort] invalid max line size %d", size)
		}
		l.maxLine = size
		return nil
	}
}

func WithLoaderLogger(logger xlog.XLogger) LoaderOption {
	return func(l *Loader) error {
		if logger != nil {
			l.logger = logger
		}
		return nil
	}
}

func WithLoaderStats(stats *observability.SortStats) LoaderOption {
	return func(l *Loader) error {
		l.stats = stats
		return nil
	}
}

// Loader reads the sources in parallel on an ants pool. Each source is
// read and collated by one worker, then inserted into the sorter at once.
type Loader struct {
	sorter  *Sorter
	pool    *ants.Pool
	logger  xlog.XLogger
	stats   *observability.SortStats
	workers int
	maxLine int
}

func NewLoader(sorter *Sorter, opts ...LoaderOption) (*Loader, error) {
	if sorter == nil {
		return nil, ErrNoSorter
	}
	l := &Loader{
		sorter:  sorter,
		logger:  xlog.NewNopXLogger(),
		workers: 4,
		maxLine: defaultMaxLineSize,
	}
	for _, o := range opts {
		if err := o(l); err != nil {
			return nil, err
		}
	}
	p, err := ants.NewPool(
		l.workers,
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(l.logger)),
	)
	if err != nil {
		return nil, err
	}
	l.pool = p
	return l, nil
}

// Load blocks until all sources are loaded. The failed sources are
// skipped, their errors are combined.
func (l *Loader) Load(ctx context.Context, sources ...Source) error {
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
		errs error
	)
	appendErr := func(err error) {
		lock.Lock()
		errs = multierr.Append(errs, err)
		lock.Unlock()
	}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			appendErr(err)
			break
		}
		wg.Add(1)
		if err := l.pool.Submit(func() {
			defer wg.Done()
			if err := l.loadOne(ctx, src); err != nil {
				appendErr(err)
			}
		}); err != nil {
			wg.Done()
			appendErr(fmt.Errorf("submit %q: %w", src.Name, err))
		}
	}
	wg.Wait()
	return errs
}

func (l *Loader) loadOne(ctx context.Context, src Source) error {
	start := time.Now()
	rc, err := src.Open()
	if err != nil {
		l.logger.Error(err, "unable to open the input", zap.String("source", src.Name))
		return fmt.Errorf("open %q: %w", src.Name, err)
	}
	defer func() {
		_ = rc.Close()
	}()

	lines, err := l.scan(ctx, rc)
	if err != nil {
		l.logger.Error(err, "unable to read the input", zap.String("source", src.Name))
		return fmt.Errorf("read %q: %w", src.Name, err)
	}
	if err = l.sorter.Add(lines...); err != nil {
		return fmt.Errorf("insert %q: %w", src.Name, err)
	}
	elapsed := time.Since(start)
	l.stats.RecordLoad(ctx, src.Name, int64(len(lines)), elapsed)
	l.logger.Info("input loaded",
		zap.String("source", src.Name),
		zap.Int("lines", len(lines)),
		zap.Duration("elapsed", elapsed),
	)
	return nil
}

func (l *Loader) scan(ctx context.Context, r io.Reader) ([]Line, error) {
	collator := l.sorter.Collator()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(64*1024, l.maxLine)), l.maxLine)
	lines := make([]Line, 0, 256)
	for scanner.Scan() {
		if len(lines)&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, collator.Line(strings.TrimSuffix(scanner.Text(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Release closes the pool, the loader is unusable afterward.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
