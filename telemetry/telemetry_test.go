package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestFromContext(t *testing.T) {
	t.Run("NoCollectorIsNoOp", func(t *testing.T) {
		collector := FromContext(context.Background())

		// Must not panic and must report nothing.
		timer := collector.Start("op")
		timer.Child("child").End()
		timer.End()

		var buf bytes.Buffer
		collector.Report(&buf, nil)
		assert.Equal(t, "", buf.String())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		collector := NewTimingCollector()
		ctx := WithCollector(context.Background(), collector)

		assert.Equal[Collector](t, collector, FromContext(ctx))
	})
}

func TestTimingReport(t *testing.T) {
	collector := NewTimingCollector()

	root := collector.Start("register")
	child := root.Child("load store")
	grandchild := child.Child("decode transactions")
	grandchild.End()
	child.End()
	sibling := root.Child("compute balances")
	sibling.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	report := buf.String()

	lines := strings.Split(strings.TrimRight(report, "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "register: "))
	assert.True(t, strings.Contains(lines[1], "├─ load store"))
	assert.True(t, strings.Contains(lines[2], "└─ decode transactions"))
	assert.True(t, strings.Contains(lines[3], "└─ compute balances"))
}

func TestEmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	assert.Equal(t, "", buf.String())
}
