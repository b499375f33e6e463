// Package output provides terminal styling helpers shared by the register
// renderer and the telemetry report.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers bound to a writer's terminal
// capabilities.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{output: termenv.NewOutput(w)}
}

// Success returns green bold text.
func (s *Styles) Success(text string) string {
	return s.output.String(text).Foreground(s.output.Color("2")).Bold().String()
}

// Error returns red bold text.
func (s *Styles) Error(text string) string {
	return s.output.String(text).Foreground(s.output.Color("1")).Bold().String()
}

// Warning returns yellow bold text.
func (s *Styles) Warning(text string) string {
	return s.output.String(text).Foreground(s.output.Color("3")).Bold().String()
}

// Amount returns styled money text: red for negative, default otherwise.
func (s *Styles) Amount(text string, negative bool) string {
	if negative {
		return s.output.String(text).Foreground(s.output.Color("1")).String()
	}
	return s.output.String(text).String()
}

// Keyword returns bold text.
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).Bold().String()
}

// Dim returns faint text for secondary information (voided rows, memo
// columns, tree lines).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).Faint().String()
}

// FilePath returns cyan text for data file locations.
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).Foreground(s.output.Color("6")).String()
}

// Output returns the underlying termenv Output.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
