package profile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// profileFile is the YAML document written by export and read by import.
type profileFile struct {
	Profiles map[string]config.Profile `yaml:"profiles"`
}

func NewExportCmd(gpCli *command.Cli) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write all profiles as YAML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to `FILE` instead of stdout",
			},
		},
		Action: func(ctx *cli.Context) error {
			return runExport(gpCli, ctx.String("output"))
		},
	}
}

func runExport(gpCli *command.Cli, output string) error {
	doc := profileFile{Profiles: make(map[string]config.Profile, len(gpCli.Config.Profiles))}
	for _, p := range gpCli.Config.ListProfiles() {
		doc.Profiles[p.Label] = p
	}

	var buf bytes.Buffer
	if err := encodeProfiles(&buf, doc); err != nil {
		return err
	}

	if output == "" {
		_, err := gpCli.Out.Write(buf.Bytes())
		return err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	fmt.Fprintf(gpCli.Err, "Exported %d profile(s) to %s\n", len(doc.Profiles), output)

	return nil
}

func encodeProfiles(w io.Writer, doc profileFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}

	return enc.Close()
}
