package profile

import (
	"fmt"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/urfave/cli/v2"
)

func NewAddCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new profile",
		Args:      true,
		ArgsUsage: "NAME",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "user",
				Aliases:  []string{"u"},
				Usage:    "Git user name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "email",
				Aliases:  []string{"e"},
				Usage:    "Git user email",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite an existing profile without asking",
			},
		},
		Action: func(ctx *cli.Context) error {
			if err := command.ExactArgs(ctx, 1); err != nil {
				return err
			}

			label := ctx.Args().First()
			user := ctx.String("user")
			email := ctx.String("email")
			force := ctx.Bool("force")

			return runAdd(gpCli, label, user, email, force)
		},
	}
}

func runAdd(gpCli *command.Cli, label, user, email string, force bool) error {
	if label == "" {
		return config.ErrLabelRequired
	}

	if gpCli.Config.HasProfile(label) && !force {
		ok, err := command.PromptForConfirmation(
			gpCli.In,
			gpCli.Out,
			fmt.Sprintf("Profile '%s' already exists. Overwrite?", label),
		)
		if err != nil {
			return err
		}

		if !ok {
			fmt.Fprintln(gpCli.Out, "Aborted.")
			return nil
		}
	}

	if err := gpCli.Config.AddProfile(config.Profile{
		Label: label,
		Name:  user,
		Email: email,
	}); err != nil {
		return err
	}

	gpCli.Success("Profile '%s' added successfully", label)
	gpCli.PrintProfile("   ", user, email)

	return nil
}
