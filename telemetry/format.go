package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/checkbook-app/checkbook/output"
)

// formatTimingTree writes the timing tree, for example:
//
//	summary: 12ms
//	├─ load store: 9ms
//	│  └─ decode transactions: 7ms
//	└─ compute totals: 1ms
func formatTimingTree(w io.Writer, root *timerNode, stylesInterface interface{}) {
	styles, _ := stylesInterface.(*output.Styles)

	duration := root.end.Sub(root.start)
	if styles != nil {
		_, _ = fmt.Fprintf(w, "%s: %s\n", styles.Keyword(root.name), formatDuration(duration))
	} else {
		_, _ = fmt.Fprintf(w, "%s: %s\n", root.name, formatDuration(duration))
	}

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	duration := node.end.Sub(node.start)
	slow := duration >= 100*time.Millisecond

	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	if styles != nil {
		timing := formatDuration(duration)
		if slow {
			timing = styles.Warning(timing)
		} else {
			timing = styles.Dim(timing)
		}
		_, _ = fmt.Fprintf(w, "%s%s: %s\n", styles.Dim(prefix+branch), node.name, timing)
	} else {
		_, _ = fmt.Fprintf(w, "%s%s%s: %s\n", prefix, branch, node.name, formatDuration(duration))
	}

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1, styles)
	}
}

// formatDuration shows milliseconds under a second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
