package access

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/faq-hunter/internal/domain"
	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
)

// Mode selects how record visibility is computed.
type Mode string

const (
	ModeOpen  Mode = "open"
	ModeBasic Mode = "basic"
	ModeGroup Mode = "group"
)

// ParseMode accepts the mode names plus "medium", the historical name of
// group mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeBasic):
		return ModeBasic, nil
	case string(ModeOpen):
		return ModeOpen, nil
	case string(ModeGroup), "medium":
		return ModeGroup, nil
	default:
		return "", fmt.Errorf("unknown permission mode %q, expected one of %v", s, []Mode{ModeOpen, ModeBasic, ModeGroup})
	}
}

// Filter decides per record whether the actor may see it. It holds no state
// between calls: every decision reads the permission provider again.
type Filter struct {
	mode     Mode
	actor    domain.Actor
	provider storage.PermissionProvider
}

func NewFilter(mode Mode, actor domain.Actor, provider storage.PermissionProvider) *Filter {
	return &Filter{
		mode:     mode,
		actor:    actor,
		provider: provider,
	}
}

// Allowed reports whether the record is visible. A provider failure is
// returned as an error and must abort the search.
func (f *Filter) Allowed(ctx context.Context, record domain.Record) (bool, error) {
	switch f.mode {
	case ModeOpen:
		return true, nil
	case ModeGroup:
		ok, err := f.groupAllowed(ctx, record.ID)
		if err != nil || ok {
			return ok, err
		}
		return f.userAllowed(ctx, record.ID)
	default:
		return f.userAllowed(ctx, record.ID)
	}
}

func (f *Filter) groupAllowed(ctx context.Context, recordID int64) (bool, error) {
	groups, err := f.provider.GroupsFor(ctx, recordID)
	if err != nil {
		return false, fmt.Errorf("failed to load group permissions of record %d: %w", recordID, err)
	}
	for _, g := range groups {
		if f.actor.InGroup(g) {
			return true, nil
		}
	}
	return false, nil
}

func (f *Filter) userAllowed(ctx context.Context, recordID int64) (bool, error) {
	users, err := f.provider.UsersFor(ctx, recordID)
	if err != nil {
		return false, fmt.Errorf("failed to load user permissions of record %d: %w", recordID, err)
	}
	return slices.Contains(users, domain.Everyone) || slices.Contains(users, f.actor.UserID), nil
}
