// Package telemetry provides hierarchical timing collection for operations.
//
// Collectors travel through the context, so instrumentation is
// non-intrusive: code asks the context for a collector and gets a no-op one
// when telemetry is disabled.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("load store")
//	defer timer.End()
//
//	child := timer.Child("decode transactions")
//	// ... work ...
//	child.End()
//
//	collector.Report(os.Stderr, styles)
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects timing data for a command run.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings. The styles parameter may be an
	// *output.Styles for terminal coloring, or nil.
	Report(w io.Writer, styles interface{})
}

// Timer tracks one operation. Timers nest via Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the context's collector, or a no-op collector when
// none is attached.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(name string) Timer            { return noOpTimer{} }
func (noOpCollector) Report(w io.Writer, st interface{}) {}

type noOpTimer struct{}

func (noOpTimer) End()                    {}
func (noOpTimer) Child(name string) Timer { return noOpTimer{} }
