package profile

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func NewImportCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Add profiles from a YAML file written by export",
		Args:      true,
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "force",
				Aliases: []string{"f"},
				Usage:   "Overwrite profiles that already exist",
			},
		},
		Action: func(ctx *cli.Context) error {
			if err := command.ExactArgs(ctx, 1); err != nil {
				return err
			}

			path := ctx.Args().First()
			force := ctx.Bool("force")

			return runImport(gpCli, path, force)
		},
	}
}

func runImport(gpCli *command.Cli, path string, force bool) error {
	var r io.Reader
	switch path {
	case "":
		return fmt.Errorf("file path is required (use - for stdin)")
	case "-":
		r = gpCli.In
	default:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	profiles, err := decodeProfiles(r)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	added, skipped, err := gpCli.Config.MergeProfiles(profiles, force)
	if err != nil {
		return err
	}

	gpCli.Success("Imported %d profile(s)", len(added))
	if len(skipped) > 0 {
		fmt.Fprintf(gpCli.Out, "   Skipped existing: %s (use --force to overwrite)\n", strings.Join(skipped, ", "))
	}

	return nil
}

func decodeProfiles(r io.Reader) ([]config.Profile, error) {
	var doc profileFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}

	profiles := make([]config.Profile, 0, len(doc.Profiles))
	for label, p := range doc.Profiles {
		p.Label = label
		profiles = append(profiles, p)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].Label < profiles[j].Label
	})

	return profiles, nil
}
