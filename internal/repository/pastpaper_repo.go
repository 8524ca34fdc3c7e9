package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/community-content-api/internal/database"
	"github.com/community-content-api/internal/models"
)

// pastPaperRepo is the concrete implementation of PastPaperRepository
type pastPaperRepo struct {
	db *database.DB
}

// NewPastPaperRepo creates a new past paper repository
func NewPastPaperRepo(db *database.DB) PastPaperRepository {
	return &pastPaperRepo{db: db}
}

// Create inserts a new past paper with moderation flags and vote count at
// their initial values
func (r *pastPaperRepo) Create(ctx context.Context, paper *models.PastPaper) error {
	query := `
		INSERT INTO past_papers (
			id, subject_name, exam_type, visibility, photo_url, confidence,
			uploader_uid, uploader_name, uploader_photo_url,
			votes_count, is_locked, deleted, spam, uploaded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, false, false, false, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		paper.ID, paper.SubjectName, paper.ExamType, paper.Visibility,
		paper.PhotoURL, paper.Confidence,
		paper.UploaderUID, paper.UploaderName, paper.UploaderPhotoURL,
		time.Now(),
	)
	return err
}

// GetByID retrieves a past paper by ID
func (r *pastPaperRepo) GetByID(ctx context.Context, id string) (*models.PastPaper, error) {
	query := `
		SELECT id, subject_name, exam_type, visibility, photo_url, confidence,
			uploader_uid, uploader_name, uploader_photo_url,
			votes_count, is_locked, deleted, spam, uploaded_at
		FROM past_papers WHERE id = $1
	`

	var paper models.PastPaper
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&paper.ID, &paper.SubjectName, &paper.ExamType, &paper.Visibility,
		&paper.PhotoURL, &paper.Confidence,
		&paper.UploaderUID, &paper.UploaderName, &paper.UploaderPhotoURL,
		&paper.VotesCount, &paper.IsLocked, &paper.Deleted, &paper.Spam,
		&paper.UploadedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &paper, nil
}

// UpdateClassification updates only the classification fields and the
// timestamp. Photo URL and confidence are left untouched; this is the
// edit-without-new-image path.
func (r *pastPaperRepo) UpdateClassification(ctx context.Context, id string, input *models.SubmissionInput) error {
	query := `
		UPDATE past_papers
		SET subject_name = $1, exam_type = $2, visibility = $3, uploaded_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.ExecContext(ctx, query,
		input.SubjectName, input.ExamType, input.Visibility, id,
	)
	return err
}

// UpdateWithPhoto updates classification fields together with a new photo
// reference and its re-scored confidence
func (r *pastPaperRepo) UpdateWithPhoto(ctx context.Context, id string, input *models.SubmissionInput, photoURL string, confidence float64) error {
	query := `
		UPDATE past_papers
		SET subject_name = $1, exam_type = $2, visibility = $3,
			photo_url = $4, confidence = $5, uploaded_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query,
		input.SubjectName, input.ExamType, input.Visibility,
		photoURL, confidence, id,
	)
	return err
}

// Count returns the total number of past papers
func (r *pastPaperRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM past_papers").Scan(&count)
	return count, err
}
