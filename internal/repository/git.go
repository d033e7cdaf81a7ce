package repository

import "context"

// GitRepository reads facts about the local checkout.
type GitRepository interface {
	// RemoteURL returns the first URL configured for the named remote
	RemoteURL(ctx context.Context, name string) (string, error)
	// HeadSHA returns the commit HEAD points at
	HeadSHA(ctx context.Context) (string, error)
}
