package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"errors"
	"io"
	"time"

	otelruntime "go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

var ErrNilMetricsWriter = errors.New("[observability] metrics writer is nil")

// NewConsoleMetricsExporter installs the global meter provider, which
// exports the metrics to w periodically and once more on shutdown.
// Serves for the command line tool, there is no endpoint to be scraped.
// The Go runtime metrics are exported along.
func NewConsoleMetricsExporter(w io.Writer, interval time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	if w == nil {
		return nil, ErrNilMetricsWriter
	}
	if interval <= 0 {
		interval = 10 * time.Second
	}
	opts = append([]stdoutmetric.Option{stdoutmetric.WithWriter(w)}, opts...)
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(interval),
	)))
	if err = otelruntime.Start(otelruntime.WithMeterProvider(mp)); err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, err
	}
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}
