package service

import (
	"context"

	"github.com/community-content-api/internal/blob"
	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/ocr"
	"github.com/community-content-api/internal/repository"
	"github.com/community-content-api/internal/validation"
	"github.com/rs/zerolog"
)

// DiscussionService defines guarded mutation and cascading deletion of
// discussions
type DiscussionService interface {
	Create(ctx context.Context, title, content, authorID string) (*models.Discussion, error)
	Get(ctx context.Context, id string) (*models.Discussion, error)
	UpdateTitle(ctx context.Context, id, title string) error
	UpdateContent(ctx context.Context, id, content string) error
	SoftDelete(ctx context.Context, id string) error
	DeleteWithComments(ctx context.Context, id string) error
	AddComment(ctx context.Context, discussionID, userID, body string) (*models.Comment, error)
}

// PastPaperService defines the submission pipeline for past papers
type PastPaperService interface {
	Get(ctx context.Context, id string) (*models.PastPaper, error)
	Submit(ctx context.Context, input *models.SubmissionInput, image []byte, contentType string, uploader *models.Uploader) (*models.PastPaper, error)
	Update(ctx context.Context, id string, input *models.SubmissionInput, image []byte, contentType string) error
}

// Services holds all service interfaces
type Services struct {
	Discussion DiscussionService
	PastPaper  PastPaperService
}

// NewServices creates all services with their collaborators injected. The
// services themselves are stateless; they are constructed once at startup
// and shared.
func NewServices(
	repos *repository.Repositories,
	blobs blob.Store,
	scorer *ocr.Scorer,
	validator *validation.Validator,
	cfg *config.Config,
	log zerolog.Logger,
) *Services {
	return &Services{
		Discussion: newDiscussionService(repos.Discussion, repos.Comment, cfg.Limits, log),
		PastPaper:  newPastPaperService(repos.PastPaper, blobs, scorer, validator, &cfg.OCR, log),
	}
}
