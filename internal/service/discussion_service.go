package service

import (
	"context"
	"fmt"

	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// discussionService is the concrete implementation of DiscussionService
type discussionService struct {
	discussions repository.DiscussionRepository
	comments    repository.CommentRepository
	limits      config.LimitsConfig
	log         zerolog.Logger
}

// newDiscussionService creates a new discussion service
func newDiscussionService(
	discussions repository.DiscussionRepository,
	comments repository.CommentRepository,
	limits config.LimitsConfig,
	log zerolog.Logger,
) *discussionService {
	return &discussionService{
		discussions: discussions,
		comments:    comments,
		limits:      limits,
		log:         log.With().Str("service", "discussion").Logger(),
	}
}

// Create persists a new discussion with zeroed edit counters
func (s *discussionService) Create(ctx context.Context, title, content, authorID string) (*models.Discussion, error) {
	discussion := &models.Discussion{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	if err := s.discussions.Create(ctx, discussion); err != nil {
		return nil, fmt.Errorf("failed to create discussion: %w", err)
	}

	s.log.Info().Str("discussion_id", discussion.ID).Msg("Discussion created")
	return discussion, nil
}

// Get retrieves a discussion by ID
func (s *discussionService) Get(ctx context.Context, id string) (*models.Discussion, error) {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrNotFound
	}
	return discussion, nil
}

// UpdateTitle applies a guarded title edit. On approval the repository
// writes the new title, a server-assigned timestamp, and an atomic
// increment of the title edit counter in one statement.
func (s *discussionService) UpdateTitle(ctx context.Context, id, title string) error {
	return s.applyEdit(ctx, id, MutationTitle, func(ctx context.Context) error {
		return s.discussions.UpdateTitle(ctx, id, title)
	})
}

// UpdateContent applies a guarded content edit
func (s *discussionService) UpdateContent(ctx context.Context, id, content string) error {
	return s.applyEdit(ctx, id, MutationContent, func(ctx context.Context) error {
		return s.discussions.UpdateContent(ctx, id, content)
	})
}

func (s *discussionService) applyEdit(ctx context.Context, id string, kind MutationKind, commit func(context.Context) error) error {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discussion == nil {
		return ErrNotFound
	}

	limit := s.limits.ContentEdits
	if kind == MutationTitle {
		limit = s.limits.TitleEdits
	}

	if decision := CanMutate(discussion, kind, limit); !decision.Allowed {
		s.log.Info().
			Str("discussion_id", id).
			Str("kind", string(kind)).
			Str("reason", decision.Reason).
			Msg("Edit denied")
		return &PolicyError{Reason: decision.Reason}
	}

	if err := commit(ctx); err != nil {
		return fmt.Errorf("failed to apply %s edit: %w", kind, err)
	}

	return nil
}

// SoftDelete marks a discussion deleted, blocking all further edits
func (s *discussionService) SoftDelete(ctx context.Context, id string) error {
	discussion, err := s.discussions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if discussion == nil {
		return ErrNotFound
	}

	return s.discussions.SoftDelete(ctx, id)
}

// DeleteWithComments hard-deletes a discussion and then cleans up its
// comments. The parent deletion is authoritative: if it fails nothing else
// happens. Comment cleanup is best-effort and runs after this method
// returns; individual failures are logged, never retried, and never roll
// back the parent deletion.
func (s *discussionService) DeleteWithComments(ctx context.Context, id string) error {
	deleted, err := s.discussions.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete discussion: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}

	s.log.Info().Str("discussion_id", id).Msg("Discussion deleted")

	// Detach cleanup from the request: the caller's contract only covers
	// the parent.
	go s.deleteComments(context.WithoutCancel(ctx), id)

	return nil
}

func (s *discussionService) deleteComments(ctx context.Context, discussionID string) {
	comments, err := s.comments.ListByDiscussion(ctx, discussionID)
	if err != nil {
		s.log.Error().Err(err).Str("discussion_id", discussionID).Msg("Failed to list comments for cleanup")
		return
	}

	for _, comment := range comments {
		if err := s.comments.Delete(ctx, comment.ID); err != nil {
			s.log.Error().Err(err).
				Str("discussion_id", discussionID).
				Str("comment_id", comment.ID).
				Msg("Failed to delete comment")
		}
	}

	s.log.Debug().
		Str("discussion_id", discussionID).
		Int("comments", len(comments)).
		Msg("Comment cleanup finished")
}

// AddComment creates a comment on a discussion
func (s *discussionService) AddComment(ctx context.Context, discussionID, userID, body string) (*models.Comment, error) {
	discussion, err := s.discussions.GetByID(ctx, discussionID)
	if err != nil {
		return nil, err
	}
	if discussion == nil {
		return nil, ErrNotFound
	}

	comment := &models.Comment{
		ID:           uuid.New().String(),
		DiscussionID: discussionID,
		UserID:       userID,
		Body:         body,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}
