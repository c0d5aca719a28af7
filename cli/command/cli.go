package command

import (
	"fmt"
	"log/slog"

	"github.com/d3witt/git-profiles/config"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/d3witt/git-profiles/streams"
	"github.com/fatih/color"
)

type Cli struct {
	Config   *config.Config
	Git      gitcfg.Bridge
	In       *streams.In
	Out, Err *streams.Out
	Logger   *slog.Logger
}

// Marks are rendered per call so color.NoColor set after start-up applies.
var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// Success prints a line prefixed with a green check mark.
func (c *Cli) Success(format string, a ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", okMark("✔"), fmt.Sprintf(format, a...))
}

// Failure prints a line prefixed with a red cross. It is used for conditions
// reported to the user that do not fail the command.
func (c *Cli) Failure(format string, a ...any) {
	fmt.Fprintf(c.Out, "%s %s\n", failMark("✘"), fmt.Sprintf(format, a...))
}

// PrintProfile prints the identity lines shown under add, switch and current.
func (c *Cli) PrintProfile(indent, name, email string) {
	fmt.Fprintf(c.Out, "%sName: %s\n", indent, name)
	fmt.Fprintf(c.Out, "%sEmail: %s\n", indent, email)
}
