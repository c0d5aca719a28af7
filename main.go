package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/cli/command/cfg"
	"github.com/d3witt/git-profiles/cli/command/profile"
	"github.com/d3witt/git-profiles/config"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/d3witt/git-profiles/streams"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var version = "dev" // set by build script

const (
	backendExec = "exec"
	backendFile = "file"
)

func main() {
	gpCli := &command.Cli{
		In:  streams.StdIn,
		Out: streams.StdOut,
		Err: streams.StdErr,
	}

	app := newApp(gpCli)

	if err := app.Run(command.FlagsFirst(app, os.Args)); err != nil {
		fmt.Fprintf(gpCli.Err, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(gpCli *command.Cli) *cli.App {
	// -v belongs to --verbose.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	return &cli.App{
		Name:    "git-profiles",
		Usage:   "Switch the global git user between saved profiles",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend",
				Usage:   "How git config is changed: exec runs git, file edits the global config file",
				Value:   backendExec,
				EnvVars: []string{"GIT_PROFILES_BACKEND"},
			},
			&cli.StringFlag{
				Name:    "git",
				Usage:   "Path to the git executable",
				Value:   "git",
				EnvVars: []string{"GIT_PROFILES_GIT"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print debug logs",
			},
		},
		Commands: []*cli.Command{
			profile.NewAddCmd(gpCli),
			profile.NewRmCmd(gpCli),
			profile.NewListCmd(gpCli),
			profile.NewSwitchCmd(gpCli),
			profile.NewCurrentCmd(gpCli),
			profile.NewCopyCmd(gpCli),
			profile.NewExportCmd(gpCli),
			profile.NewImportCmd(gpCli),
			cfg.NewConfigCmd(gpCli),
		},
		Before: func(ctx *cli.Context) error {
			return setup(gpCli, ctx.String("backend"), ctx.String("git"), ctx.Bool("verbose"))
		},
		Suggest:        true,
		Reader:         gpCli.In,
		Writer:         gpCli.Out,
		ErrWriter:      gpCli.Err,
		ExitErrHandler: exitErrHandler(gpCli.Err, os.Exit),
	}
}

func exitErrHandler(w io.Writer, exit func(int)) cli.ExitErrHandlerFunc {
	return func(_ *cli.Context, err error) {
		if err == nil {
			return
		}

		fmt.Fprintf(w, "Error: %v\n", err)
		exit(1)
	}
}

// setup loads the profile store and picks the git bridge once flags are parsed.
func setup(gpCli *command.Cli, backend, gitPath string, verbose bool) error {
	color.NoColor = !gpCli.Out.IsTerminal()
	gpCli.Logger = command.NewLogger(os.Stderr, !gpCli.Err.IsTerminal(), verbose)

	c, err := config.LoadDefault()
	if err != nil {
		return err
	}
	c.SetLogger(gpCli.Logger)
	gpCli.Logger.Debug("profiles loaded", "path", c.Path(), "count", len(c.Profiles))
	gpCli.Config = c

	bridge, err := newBridge(backend, gitPath, gpCli.Logger)
	if err != nil {
		return err
	}
	gpCli.Git = bridge

	return nil
}

func newBridge(backend, gitPath string, logger *slog.Logger) (gitcfg.Bridge, error) {
	switch backend {
	case backendExec, "":
		b := gitcfg.NewExec(gitPath)
		b.SetLogger(logger)
		return b, nil
	case backendFile:
		b, err := gitcfg.NewGlobalFile()
		if err != nil {
			return nil, err
		}
		b.SetLogger(logger)
		logger.Debug("editing git config directly", "path", b.Path)
		return b, nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", backend, backendExec, backendFile)
	}
}
