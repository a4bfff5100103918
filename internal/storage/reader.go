package storage

import (
	"context"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
)

// PermissionProvider answers who may see a record. Implementations must read
// the current state on every call.
type PermissionProvider interface {
	GroupsFor(ctx context.Context, recordID int64) ([]domain.GroupID, error)
	UsersFor(ctx context.Context, recordID int64) ([]domain.UserID, error)
}

type CategoryResolver interface {
	// PathFor returns the display path of a category, e.g. "Network > VPN".
	PathFor(ctx context.Context, id domain.CategoryID) (string, error)
}

// Backend bundles everything the search engine reads from a store.
type Backend interface {
	CandidateStore
	PermissionProvider
	CategoryResolver
	Storer
	Close()
}
