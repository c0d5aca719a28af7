package config

import (
	"errors"
	"fmt"
)

var (
	ErrLabelRequired   = errors.New("profile name is required")
	ErrProfileNotFound = errors.New("profile not found")
)

// ParseError reports a profile file that exists but is not valid TOML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a file system failure while reading or writing the profile file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
