package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

const (
	GIT_PROFILES_CONFIG_DIR = "GIT_PROFILES_CONFIG_DIR"

	appDir   = "git-profiles-cli"
	fileName = "config.toml"
)

// ConfigDir returns the directory holding the profile file. It is not created
// until the first save.
func ConfigDir() (string, error) {
	if a := os.Getenv(GIT_PROFILES_CONFIG_DIR); a != "" {
		return a, nil
	}

	b, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to retrieve config dir path: %w", err)
	}

	return filepath.Join(b, appDir), nil
}

func DefaultPath() (string, error) {
	path, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(path, fileName), nil
}

func readConfigFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, explainNotDir(err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

func writeConfigFile(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o771); err != nil {
		return &IOError{Op: "create dir", Path: dir, Err: explainNotDir(err)}
	}

	cfgFile, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return &IOError{Op: "open", Path: filename, Err: explainNotDir(err)}
	}

	if _, err := cfgFile.Write(data); err != nil {
		cfgFile.Close()
		return &IOError{Op: "write", Path: filename, Err: err}
	}

	if err := cfgFile.Close(); err != nil {
		return &IOError{Op: "close", Path: filename, Err: err}
	}

	return nil
}

// explainNotDir names the regular file sitting where a directory of the
// profile path is expected.
func explainNotDir(err error) error {
	var pathErr *os.PathError
	if !errors.As(err, &pathErr) || !errors.Is(pathErr.Err, syscall.ENOTDIR) {
		return err
	}

	blocker := blockingFile(pathErr.Path)
	if blocker == "" {
		return err
	}

	return fmt.Errorf("%s is a regular file, not a directory: %w", blocker, err)
}

// blockingFile walks up from p and returns the nearest ancestor that is a
// regular file, or "" if none is.
func blockingFile(p string) string {
	for dir := p; ; {
		if info, err := os.Stat(dir); err == nil && info.Mode().IsRegular() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir || parent == "." {
			return ""
		}
		dir = parent
	}
}
