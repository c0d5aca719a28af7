package gitcfg

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	gitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/pkg/errors"
)

const GIT_CONFIG_GLOBAL = "GIT_CONFIG_GLOBAL"

// File edits a git config file directly instead of shelling out to git.
// Comments in the file are not preserved on write.
type File struct {
	Path   string
	logger *slog.Logger
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func NewGlobalFile() (*File, error) {
	path, err := GlobalPath()
	if err != nil {
		return nil, err
	}

	return NewFile(path), nil
}

// GlobalPath resolves the file `git config --global` writes to: an explicit
// GIT_CONFIG_GLOBAL, then ~/.gitconfig if present, then any existing XDG
// config, and finally ~/.gitconfig.
func GlobalPath() (string, error) {
	if p := os.Getenv(GIT_CONFIG_GLOBAL); p != "" {
		return p, nil
	}

	paths, err := gitconfig.Paths(gitconfig.GlobalScope)
	if err != nil {
		return "", fmt.Errorf("failed to resolve global git config: %w", err)
	}

	var home string
	for _, p := range paths {
		if filepath.Base(p) != ".gitconfig" {
			continue
		}
		if home == "" {
			home = p
		}
		if fileExists(p) {
			return p, nil
		}
	}

	for _, p := range paths {
		if fileExists(p) {
			return p, nil
		}
	}

	if home != "" {
		return home, nil
	}
	if len(paths) > 0 {
		return paths[0], nil
	}

	return "", errors.New("no global git config location found")
}

func (f *File) SetLogger(logger *slog.Logger) {
	f.logger = logger
}

func (f *File) Get(_ context.Context, key string) string {
	section, subsection, option, ok := splitKey(key)
	if !ok {
		return NotSet
	}

	cfg, err := f.load()
	if err != nil {
		f.debug("git config read failed", "path", f.Path, "err", err)
		return NotSet
	}

	if !cfg.HasSection(section) {
		return NotSet
	}

	s := cfg.Section(section)
	if subsection == "" {
		if !s.HasOption(option) {
			return NotSet
		}
		return s.Option(option)
	}

	if !s.HasSubsection(subsection) {
		return NotSet
	}

	ss := s.Subsection(subsection)
	if !ss.HasOption(option) {
		return NotSet
	}

	return ss.Option(option)
}

func (f *File) Set(_ context.Context, key, value string) error {
	section, subsection, option, ok := splitKey(key)
	if !ok {
		return fmt.Errorf("invalid key %q: expected section.name", key)
	}

	cfg, err := f.load()
	if err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	if subsection == "" {
		cfg.Section(section).SetOption(option, value)
	} else {
		cfg.Section(section).Subsection(subsection).SetOption(option, value)
	}

	var buf bytes.Buffer
	if err := format.NewEncoder(&buf).Encode(cfg); err != nil {
		return errors.Wrapf(err, "failed to encode %s", f.Path)
	}

	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	if err := os.WriteFile(f.Path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	f.debug("git config written", "path", f.Path, "key", key)

	return nil
}

func (f *File) load() (*format.Config, error) {
	cfg := format.New()

	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := format.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", f.Path)
	}

	return cfg, nil
}

func (f *File) debug(msg string, args ...any) {
	if f.logger != nil {
		f.logger.Debug(msg, args...)
	}
}

// splitKey splits "section.option" and "section.sub.section.option" keys.
func splitKey(key string) (section, subsection, option string, ok bool) {
	first := strings.Index(key, ".")
	last := strings.LastIndex(key, ".")
	if first <= 0 || last == len(key)-1 {
		return "", "", "", false
	}

	section = key[:first]
	option = key[last+1:]
	if first != last {
		subsection = key[first+1 : last]
	}

	return section, subsection, option, true
}

func fileExists(path string) bool {
	f, err := os.Stat(path)
	return err == nil && !f.IsDir()
}
