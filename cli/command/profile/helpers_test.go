package profile

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/d3witt/git-profiles/cli/command"
	"github.com/d3witt/git-profiles/config"
	"github.com/d3witt/git-profiles/gitcfg"
	"github.com/d3witt/git-profiles/streams"
	"github.com/stretchr/testify/require"
)

type testCli struct {
	*command.Cli
	out  *bytes.Buffer
	errs *bytes.Buffer
	git  *gitcfg.Fake
}

func newTestCli(t *testing.T, input string) *testCli {
	t.Helper()

	c, err := config.Load(filepath.Join(t.TempDir(), "git-profiles", "config.toml"))
	require.NoError(t, err)

	var out, errs bytes.Buffer
	git := gitcfg.NewFake()

	return &testCli{
		Cli: &command.Cli{
			Config: c,
			Git:    git,
			In:     streams.NewIn(strings.NewReader(input)),
			Out:    streams.NewOut(&out),
			Err:    streams.NewOut(&errs),
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
		out:  &out,
		errs: &errs,
		git:  git,
	}
}

func (tc *testCli) addProfile(t *testing.T, label, name, email string) {
	t.Helper()

	require.NoError(t, tc.Config.AddProfile(config.Profile{Label: label, Name: name, Email: email}))
}

func reload(t *testing.T, c *config.Config) *config.Config {
	t.Helper()

	reloaded, err := config.Load(c.Path())
	require.NoError(t, err)

	return reloaded
}
