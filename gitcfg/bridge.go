// Package gitcfg reads and writes git's global configuration, either by
// running the git executable or by editing the global config file in place.
package gitcfg

import "context"

const (
	UserName  = "user.name"
	UserEmail = "user.email"

	// NotSet is what Get reports when a key cannot be read for any reason.
	NotSet = "Not set"
)

type Bridge interface {
	Get(ctx context.Context, key string) string
	Set(ctx context.Context, key, value string) error
}
