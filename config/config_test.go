package config

import (
	"os"
	"path/filepath"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConfig(t *testing.T) *Config {
	t.Helper()

	cfg, err := Load(filepath.Join(t.TempDir(), "git-profiles", fileName))
	require.NoError(t, err)

	return cfg
}

func TestLoadMissingFileReturnsEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", fileName)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.Profiles)
	assert.Equal(t, path, cfg.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte("[profiles.work\nname = "), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)

	var tomlErr toml.ParseError
	assert.ErrorAs(t, err, &tomlErr)
}

func TestLoadFileWithoutTimestamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	data := `[profiles.work]
name = "Jane"
email = "jane@co.com"

[profiles.home]
name = "Jane Doe"
email = "jane@home.org"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := []Profile{
		{Label: "home", Name: "Jane Doe", Email: "jane@home.org"},
		{Label: "work", Name: "Jane", Email: "jane@co.com"},
	}
	if diff := cmp.Diff(want, cfg.ListProfiles()); diff != "" {
		t.Fatalf("profiles mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	cfg := tempConfig(t)

	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"}))

	info, err := os.Stat(cfg.Path())
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	reloaded, err := Load(cfg.Path())
	require.NoError(t, err)

	got, err := reloaded.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "jane@co.com", got.Email)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSaveFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	cfg, err := Load(filepath.Join(blocker, "sub", fileName))
	require.NoError(t, err, "a file in the way reads as an empty store")
	assert.Empty(t, cfg.Profiles)

	err = cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"})
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "create dir", ioErr.Op)
	assert.Contains(t, err.Error(), blocker+" is a regular file, not a directory")
	assert.ErrorIs(t, err, syscall.ENOTDIR)
}

func TestSaveFailsWhenPathIsADir(t *testing.T) {
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.Mkdir(path, 0o700))

	cfg := defaultConfig(path)
	err := cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"})

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.Equal(t, path, ioErr.Path)
}

func TestConfigDirFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(GIT_PROFILES_CONFIG_DIR, dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, fileName), path)
}

func TestDefaultPathUnderUserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honoured on linux")
	}

	home := t.TempDir()
	t.Setenv(GIT_PROFILES_CONFIG_DIR, "")
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "git-profiles-cli")
	require.NoError(t, os.Mkdir(dir, 0o700))
	data := "[profiles.work]\nname = \"Jane\"\nemail = \"jane@co.com\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(data), 0o600))

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, fileName), cfg.Path())

	work, err := cfg.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "jane@co.com", work.Email)
}

func TestAddThenList(t *testing.T) {
	cfg := tempConfig(t)

	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"}))

	want := []Profile{{Label: "work", Name: "Jane", Email: "jane@co.com"}}
	got := cfg.ListProfiles()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Profile{}, "CreatedAt")); diff != "" {
		t.Fatalf("profiles mismatch (-want +got):\n%s", diff)
	}
}

func TestAddOverwritesWholesale(t *testing.T) {
	cfg := tempConfig(t)

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com", CreatedAt: created}))
	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "J. Doe", Email: "jdoe@co.com"}))

	got, err := cfg.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "J. Doe", got.Name)
	assert.Equal(t, "jdoe@co.com", got.Email)
	assert.NotEqual(t, created, got.CreatedAt)
	assert.Len(t, cfg.Profiles, 1)
}

func TestAddRequiresLabel(t *testing.T) {
	cfg := tempConfig(t)

	err := cfg.AddProfile(Profile{Name: "Jane", Email: "jane@co.com"})
	assert.ErrorIs(t, err, ErrLabelRequired)
}

func TestRemoveProfile(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"}))

	require.NoError(t, cfg.RemoveProfile("work"))

	_, err := cfg.GetProfile("work")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	reloaded, err := Load(cfg.Path())
	require.NoError(t, err)
	assert.False(t, reloaded.HasProfile("work"))
}

func TestRemoveMissingProfile(t *testing.T) {
	cfg := tempConfig(t)

	err := cfg.RemoveProfile("ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, statErr := os.Stat(cfg.Path())
	assert.True(t, os.IsNotExist(statErr), "failed remove must not save")
}

func TestListIsSortedByLabel(t *testing.T) {
	cfg := tempConfig(t)

	for _, label := range []string{"zeta", "alpha", "mid", "Beta"} {
		require.NoError(t, cfg.AddProfile(Profile{Label: label, Name: label, Email: label + "@x.io"}))
	}

	var got []string
	for _, p := range cfg.ListProfiles() {
		got = append(got, p.Label)
	}

	assert.Equal(t, []string{"Beta", "alpha", "mid", "zeta"}, got)
	assert.Equal(t, got, cfg.Labels())
}

func TestFindByIdentity(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"}))
	require.NoError(t, cfg.AddProfile(Profile{Label: "alt", Name: "Jane", Email: "jane@co.com"}))
	require.NoError(t, cfg.AddProfile(Profile{Label: "home", Name: "Jane", Email: "jane@home.org"}))

	tests := []struct {
		name      string
		user      string
		email     string
		wantLabel string
		wantOK    bool
	}{
		{name: "first label wins", user: "Jane", email: "jane@co.com", wantLabel: "alt", wantOK: true},
		{name: "exact match", user: "Jane", email: "jane@home.org", wantLabel: "home", wantOK: true},
		{name: "email differs", user: "Jane", email: "jane@other.org"},
		{name: "not set", user: "Not set", email: "Not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := cfg.FindByIdentity(tt.user, tt.email)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, p.Label)
		})
	}
}

func TestMergeProfiles(t *testing.T) {
	cfg := tempConfig(t)
	require.NoError(t, cfg.AddProfile(Profile{Label: "work", Name: "Jane", Email: "jane@co.com"}))

	incoming := []Profile{
		{Label: "work", Name: "Other", Email: "other@co.com"},
		{Label: "home", Name: "Jane", Email: "jane@home.org"},
	}

	added, skipped, err := cfg.MergeProfiles(incoming, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"home"}, added)
	assert.Equal(t, []string{"work"}, skipped)

	work, err := cfg.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "Jane", work.Name)

	added, skipped, err = cfg.MergeProfiles(incoming, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "home"}, added)
	assert.Empty(t, skipped)

	reloaded, err := Load(cfg.Path())
	require.NoError(t, err)
	work, err = reloaded.GetProfile("work")
	require.NoError(t, err)
	assert.Equal(t, "Other", work.Name)
}
