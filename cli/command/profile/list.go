package profile

import (
	"context"
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const addHint = "Use 'git-profiles add <name> --user <user> --email <email>' to add a profile."

func NewListCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List profiles",
		Action: func(ctx *cli.Context) error {
			return listProfiles(ctx.Context, gpCli)
		},
	}
}

func listProfiles(ctx context.Context, gpCli *command.Cli) error {
	profiles := gpCli.Config.ListProfiles()

	if len(profiles) == 0 {
		fmt.Fprintln(gpCli.Out, "No profiles configured.")
		fmt.Fprintln(gpCli.Out)
		fmt.Fprintln(gpCli.Out, addHint)
		return nil
	}

	var active string
	if p, ok := gpCli.Config.FindByIdentity(
		gpCli.Git.Get(ctx, gitcfg.UserName),
		gpCli.Git.Get(ctx, gitcfg.UserEmail),
	); ok {
		active = p.Label
	}

	header := []string{" ", "NAME", "USER", "EMAIL", "ADDED"}
	rows := make([][]string, 0, len(profiles))

	for _, p := range profiles {
		mark := " "
		if p.Label == active {
			mark = "*"
		}

		added := "-"
		if !p.CreatedAt.IsZero() {
			added = humanize.Time(p.CreatedAt)
		}

		rows = append(rows, []string{
			mark,
			p.Label,
			p.Name,
			p.Email,
			added,
		})
	}

	return command.PrintTable(gpCli.Out, header, rows)
}
