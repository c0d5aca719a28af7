package profile

import (
	"context"
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/urfave/cli/v2"
)

func NewCurrentCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:  "current",
		Usage: "Show the global git user and its profile",
		Action: func(ctx *cli.Context) error {
			return runCurrent(ctx.Context, gpCli)
		},
	}
}

func runCurrent(ctx context.Context, gpCli *command.Cli) error {
	name := gpCli.Git.Get(ctx, gitcfg.UserName)
	email := gpCli.Git.Get(ctx, gitcfg.UserEmail)

	fmt.Fprintln(gpCli.Out, "Current Git user:")
	gpCli.PrintProfile("  ", name, email)

	if p, ok := gpCli.Config.FindByIdentity(name, email); ok {
		fmt.Fprintf(gpCli.Out, "\n  (Profile: %s)\n", p.Label)
	}

	return nil
}
