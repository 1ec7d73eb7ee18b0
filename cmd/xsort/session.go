package main

import (
	"context"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/textsort"
	"github.com/benz9527/xtree/observability"
	"github.com/benz9527/xtree/xlog"
)

// session is one run of a command, from the config to the loaded sorter.
type session struct {
	cfg      *Config
	logger   xlog.XLogger
	sorter   *textsort.Sorter
	shutdown func(ctx context.Context) error
}

func newSession(cmd *cobra.Command) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(configPath, cmd)
	if err != nil {
		return nil, err
	}
	// Validated already.
	lvl, _ := xlog.ParseLogLevel(cfg.Log.Level)
	enc, _ := xlog.ParseEncoder(cfg.Log.Format)
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriter(cmd.ErrOrStderr()),
		xlog.WithXLoggerLevel(lvl),
		xlog.WithXLoggerEncoder(enc),
	)

	sorter, err := textsort.NewSorter(textsort.WithSorterFold(cfg.Fold))
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:    cfg,
		logger: logger,
		sorter: sorter,
	}
	if cfg.Metrics.Enabled {
		if s.shutdown, err = observability.NewConsoleMetricsExporter(cmd.ErrOrStderr(), cfg.Metrics.Interval); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// load reads all sources, a single failed source fails the run.
func (s *session) load(ctx context.Context, args []string, stdin io.Reader) error {
	maxLine, err := s.cfg.MaxLineBytes()
	if err != nil {
		return err
	}
	stats := observability.NewSortStats("", func() int64 {
		return int64(s.sorter.Height())
	})
	loader, err := textsort.NewLoader(s.sorter,
		textsort.WithLoaderWorkers(s.cfg.Workers),
		textsort.WithLoaderMaxLine(maxLine),
		textsort.WithLoaderLogger(s.logger.Named("loader")),
		textsort.WithLoaderStats(stats),
	)
	if err != nil {
		return err
	}
	defer loader.Release()

	sources := lo.Map(textsort.FileSources(args...), func(src textsort.Source, _ int) textsort.Source {
		if src.Name == textsort.StdinName {
			return textsort.ReaderSource(textsort.StdinName, stdin)
		}
		return src
	})
	start := time.Now()
	if err = loader.Load(ctx, sources...); err != nil {
		return err
	}
	s.logger.Info("lines sorted",
		zap.Int64("lines", s.sorter.Len()),
		zap.Int("sources", len(sources)),
		zap.Int("height", s.sorter.Height()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (s *session) close(ctx context.Context) {
	if s.shutdown != nil {
		if err := s.shutdown(ctx); err != nil {
			s.logger.Error(err, "unable to flush the metrics")
		}
	}
	_ = s.logger.Sync()
}

func withSession(cmd *cobra.Command, args []string, fn func(cmd *cobra.Command, s *session) error) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.close(context.WithoutCancel(ctx))

	if err = s.load(ctx, args, cmd.InOrStdin()); err != nil {
		return err
	}
	return fn(cmd, s)
}
