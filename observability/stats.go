package observability

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/samber/lo"
	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SortStats are the instruments of one sort run.
type SortStats struct {
	linesLoaded  metric.Int64Counter
	filesLoaded  metric.Int64Counter
	loadDuration metric.Float64Histogram
	treeHeight   metric.Int64ObservableGauge
	goroutines   metric.Int64ObservableUpDownCounter
}

// NewSortStats registers the instruments on the global meter provider.
// The height is observed through heightFn on every collection, it must
// be safe to call concurrently.
func NewSortStats(name string, heightFn func() int64) *SortStats {
	builder := &strings.Builder{}
	builder.WriteString("xtree/xsort")
	if len(strings.TrimSpace(name)) > 0 {
		builder.WriteString("/")
		builder.WriteString(name)
	}
	meter := otel.Meter(builder.String(), metric.WithInstrumentationVersion(otelruntime.Version()))
	if heightFn == nil {
		heightFn = func() int64 { return -1 }
	}
	return &SortStats{
		linesLoaded: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xsort.lines.loaded",
			metric.WithDescription(`The lines inserted into the tree.`),
		)),
		filesLoaded: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xsort.files.loaded",
			metric.WithDescription(`The input files read, the stdin included.`),
		)),
		loadDuration: lo.Must[metric.Float64Histogram](meter.Float64Histogram(
			"xsort.load.duration",
			metric.WithDescription(`The time to read and insert one input.`),
			metric.WithUnit("s"),
		)),
		treeHeight: lo.Must[metric.Int64ObservableGauge](meter.Int64ObservableGauge(
			"xsort.tree.height",
			metric.WithDescription(`The height of the red-black tree.`),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(heightFn())
				return nil
			}),
		)),
		goroutines: lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
			"app.core.goroutines",
			metric.WithDescription(`The application goroutines' info.`),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(int64(runtime.NumGoroutine()))
				return nil
			}),
		)),
	}
}

// RecordLoad records one input, nil stats are ignored.
func (stats *SortStats) RecordLoad(ctx context.Context, source string, lines int64, elapsed time.Duration) {
	if stats == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("source", source))
	stats.filesLoaded.Add(ctx, 1, attrs)
	stats.linesLoaded.Add(ctx, lines, attrs)
	stats.loadDuration.Record(ctx, elapsed.Seconds(), attrs)
}
