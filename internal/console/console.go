// Package console renders user-facing terminal messages for the transkeys
// CLI. It is the surface behind which validation failures and path warnings
// reach the user; structured logs go through internal/logger instead.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	alertStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	warnStyle  = lipgloss.NewStyle().Faint(true)
)

// Console writes styled messages to a single output stream.
type Console struct {
	out io.Writer
}

// New returns a Console writing to out.
func New(out io.Writer) *Console {
	return &Console{out: out}
}

// Default returns a Console writing to os.Stderr.
func Default() *Console {
	return New(os.Stderr)
}

// Alert renders msg in an inverse, bold style. Used for fatal validation
// failures right before the process exits.
func (c *Console) Alert(msg string) {
	fmt.Fprintln(c.out, alertStyle.Render(msg))
}

// Warn renders msg in a faint style. Used for non-fatal diagnostics.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, warnStyle.Render(msg))
}
