package repository

import (
	"context"
	"time"

	"github.com/community-content-api/internal/database"
	"github.com/community-content-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, discussion_id, user_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.DiscussionID, comment.UserID, comment.Body,
		time.Now(),
	)
	return err
}

// ListByDiscussion returns all comments referencing the given discussion,
// oldest first
func (r *commentRepo) ListByDiscussion(ctx context.Context, discussionID string) ([]*models.Comment, error) {
	query := `
		SELECT id, discussion_id, user_id, body, created_at
		FROM comments WHERE discussion_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, discussionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.DiscussionID, &comment.UserID, &comment.Body,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// Delete removes a single comment
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
