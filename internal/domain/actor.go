package domain

import "slices"

type UserID int64

type GroupID int64

// Everyone in a record's user list makes the record visible to every actor.
const Everyone UserID = -1

const (
	AnonymousUser  UserID  = -1
	AnonymousGroup GroupID = -1
)

// Actor is the user a search is evaluated for.
type Actor struct {
	UserID   UserID    `json:"user_id"`
	GroupIDs []GroupID `json:"group_ids"`
}

func Anonymous() Actor {
	return Actor{UserID: AnonymousUser, GroupIDs: []GroupID{AnonymousGroup}}
}

func (a Actor) InGroup(g GroupID) bool {
	return slices.Contains(a.GroupIDs, g)
}
