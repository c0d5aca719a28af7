package command

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// FlagsFirst moves a command's flags in front of its positional arguments so
// `add work --user Jane` parses like `add --user Jane work`. urfave/cli stops
// reading flags at the first positional argument.
func FlagsFirst(app *cli.App, args []string) []string {
	if len(args) < 2 {
		return args
	}

	out := []string{args[0]}
	i := 1
	for i < len(args) && isFlag(args[i]) {
		n := flagWidth(app.Flags, args[i:])
		out = append(out, args[i:i+n]...)
		i += n
	}

	if i >= len(args) {
		return out
	}

	cmd := app.Command(args[i])
	if cmd == nil {
		return args
	}
	out = append(out, args[i])

	var flags, positional []string
	dash := false
	rest := args[i+1:]
	for j := 0; j < len(rest); {
		switch {
		case rest[j] == "--":
			dash = true
			positional = append(positional, rest[j+1:]...)
			j = len(rest)
		case isFlag(rest[j]):
			n := flagWidth(cmd.Flags, rest[j:])
			flags = append(flags, rest[j:j+n]...)
			j += n
		default:
			positional = append(positional, rest[j])
			j++
		}
	}

	out = append(out, flags...)
	if dash {
		out = append(out, "--")
	}

	return append(out, positional...)
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg != "--"
}

// flagWidth reports how many tokens the flag at args[0] consumes.
func flagWidth(flags []cli.Flag, args []string) int {
	name := strings.TrimLeft(args[0], "-")
	if strings.Contains(name, "=") || len(args) == 1 {
		return 1
	}

	for _, f := range flags {
		for _, n := range f.Names() {
			if n != name {
				continue
			}
			if _, ok := f.(*cli.BoolFlag); ok {
				return 1
			}
			return 2
		}
	}

	// Unknown flags and the implicit help/version flags take no value.
	return 1
}

// ExactArgs fails unless the command got exactly n positional arguments.
func ExactArgs(ctx *cli.Context, n int) error {
	if ctx.NArg() == n {
		return nil
	}

	noun := "arguments"
	if n == 1 {
		noun = "argument"
	}

	return fmt.Errorf("%s requires exactly %d %s, got %d", ctx.Command.Name, n, noun, ctx.NArg())
}
