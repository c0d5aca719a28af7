package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/urfave/cli/v2"
)

func NewSwitchCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:      "switch",
		Aliases:   []string{"use"},
		Usage:     "Set the global git user to a profile",
		Args:      true,
		ArgsUsage: "NAME",
		Action: func(ctx *cli.Context) error {
			if err := command.ExactArgs(ctx, 1); err != nil {
				return err
			}

			label := ctx.Args().First()
			return runSwitch(ctx.Context, gpCli, label)
		},
	}
}

func runSwitch(ctx context.Context, gpCli *command.Cli, label string) error {
	p, err := gpCli.Config.GetProfile(label)
	if errors.Is(err, config.ErrProfileNotFound) {
		gpCli.Failure("Profile '%s' is not found!", label)
		printKnownLabels(gpCli)
		return nil
	}
	if err != nil {
		return err
	}

	if err := gpCli.Git.Set(ctx, gitcfg.UserName, p.Name); err != nil {
		return err
	}
	if err := gpCli.Git.Set(ctx, gitcfg.UserEmail, p.Email); err != nil {
		return err
	}

	gpCli.Logger.Debug("switched profile", "profile", label)

	gpCli.Success("Switched to profile '%s'", label)
	gpCli.PrintProfile("   ", p.Name, p.Email)

	return nil
}

func printKnownLabels(gpCli *command.Cli) {
	labels := gpCli.Config.Labels()

	fmt.Fprintln(gpCli.Out)
	if len(labels) == 0 {
		fmt.Fprintln(gpCli.Out, "No profiles configured.")
		fmt.Fprintln(gpCli.Out, addHint)
		return
	}

	fmt.Fprintln(gpCli.Out, "Found these profiles:")
	for _, label := range labels {
		fmt.Fprintf(gpCli.Out, "  - %s\n", label)
	}
}
