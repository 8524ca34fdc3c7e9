package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/community-content-api/internal/database"
	"github.com/community-content-api/internal/models"
)

// discussionRepo is the concrete implementation of DiscussionRepository
type discussionRepo struct {
	db *database.DB
}

// NewDiscussionRepo creates a new discussion repository
func NewDiscussionRepo(db *database.DB) DiscussionRepository {
	return &discussionRepo{db: db}
}

// Create inserts a new discussion with zeroed edit counters
func (r *discussionRepo) Create(ctx context.Context, discussion *models.Discussion) error {
	query := `
		INSERT INTO discussions (id, title, content, author_id, is_deleted, title_edit_count, content_edit_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, false, 0, 0, $5, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		discussion.ID, discussion.Title, discussion.Content, discussion.AuthorID,
		time.Now(),
	)
	return err
}

// GetByID retrieves a discussion by ID
func (r *discussionRepo) GetByID(ctx context.Context, id string) (*models.Discussion, error) {
	query := `
		SELECT id, title, content, author_id, is_deleted, title_edit_count, content_edit_count, created_at, updated_at
		FROM discussions WHERE id = $1
	`

	var discussion models.Discussion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&discussion.ID, &discussion.Title, &discussion.Content, &discussion.AuthorID,
		&discussion.IsDeleted, &discussion.TitleEditCount, &discussion.ContentEditCount,
		&discussion.CreatedAt, &discussion.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &discussion, nil
}

// UpdateTitle writes the new title, a server-assigned timestamp, and a
// relative increment of the title edit counter in one statement. The
// increment happens inside the database so concurrent editors never lose
// a count.
func (r *discussionRepo) UpdateTitle(ctx context.Context, id, title string) error {
	query := `
		UPDATE discussions
		SET title = $1, updated_at = NOW(), title_edit_count = title_edit_count + 1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, title, id)
	return err
}

// UpdateContent writes the new content, a server-assigned timestamp, and a
// relative increment of the content edit counter in one statement.
func (r *discussionRepo) UpdateContent(ctx context.Context, id, content string) error {
	query := `
		UPDATE discussions
		SET content = $1, updated_at = NOW(), content_edit_count = content_edit_count + 1
		WHERE id = $2
	`
	_, err := r.db.ExecContext(ctx, query, content, id)
	return err
}

// SoftDelete marks a discussion deleted without removing the row. A
// soft-deleted discussion rejects all further edits.
func (r *discussionRepo) SoftDelete(ctx context.Context, id string) error {
	query := `UPDATE discussions SET is_deleted = true, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// Delete hard-removes a discussion row. Returns false when no row matched.
func (r *discussionRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM discussions WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Count returns the total number of discussions
func (r *discussionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM discussions").Scan(&count)
	return count, err
}
