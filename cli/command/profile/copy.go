package profile

import (
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/urfave/cli/v2"
	"golang.design/x/clipboard"
)

var writeClipboard = func(data []byte) error {
	if err := clipboard.Init(); err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func NewCopyCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a profile as \"Name <email>\" to clipboard",
		Args:      true,
		ArgsUsage: "NAME",
		Action: func(ctx *cli.Context) error {
			if err := command.ExactArgs(ctx, 1); err != nil {
				return err
			}

			label := ctx.Args().First()
			return runCopy(gpCli, label)
		},
	}
}

func runCopy(gpCli *command.Cli, label string) error {
	p, err := gpCli.Config.GetProfile(label)
	if err != nil {
		return fmt.Errorf("%w: %s", err, label)
	}

	if err := writeClipboard([]byte(fmt.Sprintf("%s <%s>", p.Name, p.Email))); err != nil {
		return fmt.Errorf("failed to access clipboard: %w", err)
	}

	fmt.Fprintln(gpCli.Out, "Profile copied to your clipboard.")

	return nil
}
