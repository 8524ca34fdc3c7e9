package repository

import (
	"context"

	"github.com/community-content-api/internal/database"
	"github.com/community-content-api/internal/models"
)

// DiscussionRepository defines the interface for discussion data operations.
// UpdateTitle and UpdateContent perform the field write, the server-side
// timestamp, and the relative counter increment in a single statement.
type DiscussionRepository interface {
	Create(ctx context.Context, discussion *models.Discussion) error
	GetByID(ctx context.Context, id string) (*models.Discussion, error)
	UpdateTitle(ctx context.Context, id, title string) error
	UpdateContent(ctx context.Context, id, content string) error
	SoftDelete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByDiscussion(ctx context.Context, discussionID string) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// PastPaperRepository defines the interface for past paper data operations
type PastPaperRepository interface {
	Create(ctx context.Context, paper *models.PastPaper) error
	GetByID(ctx context.Context, id string) (*models.PastPaper, error)
	UpdateClassification(ctx context.Context, id string, input *models.SubmissionInput) error
	UpdateWithPhoto(ctx context.Context, id string, input *models.SubmissionInput, photoURL string, confidence float64) error
	Count(ctx context.Context) (int, error)
}

// SubjectRepository defines the interface for the allowed subject set
type SubjectRepository interface {
	GetAllNames(ctx context.Context) ([]string, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Discussion DiscussionRepository
	Comment    CommentRepository
	PastPaper  PastPaperRepository
	Subject    SubjectRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Discussion: NewDiscussionRepo(db),
		Comment:    NewCommentRepo(db),
		PastPaper:  NewPastPaperRepo(db),
		Subject:    NewSubjectRepo(db),
	}
}
