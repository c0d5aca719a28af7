package profile

import (
	"errors"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/urfave/cli/v2"
)

func NewRmCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Aliases:   []string{"rm"},
		Usage:     "Remove a profile",
		Args:      true,
		ArgsUsage: "NAME",
		Action: func(ctx *cli.Context) error {
			if err := command.ExactArgs(ctx, 1); err != nil {
				return err
			}

			label := ctx.Args().First()
			return runRemove(gpCli, label)
		},
	}
}

func runRemove(gpCli *command.Cli, label string) error {
	err := gpCli.Config.RemoveProfile(label)
	if errors.Is(err, config.ErrProfileNotFound) {
		gpCli.Failure("Profile '%s' not found", label)
		return nil
	}
	if err != nil {
		return err
	}

	gpCli.Success("Profile '%s' removed successfully", label)

	return nil
}
