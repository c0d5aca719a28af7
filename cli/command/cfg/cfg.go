package cfg

import (
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/urfave/cli/v2"
)

func NewConfigCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Get profile file path",
		Action: func(ctx *cli.Context) error {
			fmt.Fprintln(gpCli.Out, gpCli.Config.Path())
			return nil
		},
	}
}
