package service

import (
	"github.com/community-content-api/internal/models"
)

// MutationKind selects which edit counter a mutation is charged against
type MutationKind string

// Mutation kinds for discussion edits
const (
	MutationTitle   MutationKind = "title"
	MutationContent MutationKind = "content"
)

// Decision is the outcome of an edit guard check
type Decision struct {
	Allowed bool
	Reason  string
}

// CanMutate decides whether a mutation of the given kind is permitted for
// the discussion, given the configured edit limit. It is a pure predicate:
// the caller increments the counter and persists.
//
// Deletion is a harder invariant than the edit count, so it is checked
// first. A zero counter means the field was never edited and is always
// allowed.
func CanMutate(discussion *models.Discussion, kind MutationKind, limit int) Decision {
	if discussion.IsDeleted {
		return Decision{Allowed: false, Reason: ReasonAlreadyDeleted}
	}

	count := discussion.ContentEditCount
	if kind == MutationTitle {
		count = discussion.TitleEditCount
	}

	if count > 0 && count > limit {
		return Decision{Allowed: false, Reason: ReasonLocked}
	}

	return Decision{Allowed: true}
}
