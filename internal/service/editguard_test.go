package service_test

import (
	"testing"

	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/service"
)

func TestCanMutate_DeletedDiscussion(t *testing.T) {
	// Deletion blocks every mutation kind regardless of counters
	discussion := &models.Discussion{
		ID:               "d1",
		IsDeleted:        true,
		TitleEditCount:   0,
		ContentEditCount: 0,
	}

	for _, kind := range []service.MutationKind{service.MutationTitle, service.MutationContent} {
		t.Run(string(kind), func(t *testing.T) {
			decision := service.CanMutate(discussion, kind, 5)
			if decision.Allowed {
				t.Fatal("Mutation of deleted discussion should be denied")
			}
			if decision.Reason != service.ReasonAlreadyDeleted {
				t.Errorf("Expected reason %s, got %s", service.ReasonAlreadyDeleted, decision.Reason)
			}
		})
	}
}

func TestCanMutate_DeletedTakesPrecedenceOverLimit(t *testing.T) {
	// A deleted discussion over its edit limit reports the deletion, not
	// the limit
	discussion := &models.Discussion{
		ID:             "d1",
		IsDeleted:      true,
		TitleEditCount: 100,
	}

	decision := service.CanMutate(discussion, service.MutationTitle, 5)
	if decision.Reason != service.ReasonAlreadyDeleted {
		t.Errorf("Expected reason %s, got %s", service.ReasonAlreadyDeleted, decision.Reason)
	}
}

func TestCanMutate_EditLimits(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		limit   int
		allowed bool
	}{
		{"never edited", 0, 5, true},
		{"below limit", 3, 5, true},
		{"exactly at limit", 5, 5, true},
		{"one over limit", 6, 5, false},
		{"far over limit", 50, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discussion := &models.Discussion{ID: "d1", TitleEditCount: tt.count}
			decision := service.CanMutate(discussion, service.MutationTitle, tt.limit)
			if decision.Allowed != tt.allowed {
				t.Errorf("count=%d limit=%d: expected allowed=%v, got %v",
					tt.count, tt.limit, tt.allowed, decision.Allowed)
			}
			if !tt.allowed && decision.Reason != service.ReasonLocked {
				t.Errorf("Expected reason %s, got %s", service.ReasonLocked, decision.Reason)
			}
		})
	}
}

func TestCanMutate_CountersAreIndependent(t *testing.T) {
	// Exhausting the content counter must not lock the title
	discussion := &models.Discussion{
		ID:               "d1",
		TitleEditCount:   0,
		ContentEditCount: 10,
	}

	if decision := service.CanMutate(discussion, service.MutationContent, 5); decision.Allowed {
		t.Error("Content mutation should be denied")
	}
	if decision := service.CanMutate(discussion, service.MutationTitle, 5); !decision.Allowed {
		t.Error("Title mutation should still be allowed")
	}
}

func TestCanMutate_NoSideEffects(t *testing.T) {
	discussion := &models.Discussion{ID: "d1", TitleEditCount: 3}

	service.CanMutate(discussion, service.MutationTitle, 5)

	if discussion.TitleEditCount != 3 {
		t.Errorf("Guard must not mutate the record, counter became %d", discussion.TitleEditCount)
	}
}
