package models

import (
	"time"
)

// Discussion represents a user-authored discussion thread. Title and content
// edits are rate-limited per field, and a soft-deleted discussion accepts no
// further mutation.
type Discussion struct {
	ID               string    `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Content          string    `json:"content" db:"content"`
	AuthorID         string    `json:"author_id" db:"author_id"`
	IsDeleted        bool      `json:"is_deleted" db:"is_deleted"`
	TitleEditCount   int       `json:"title_edit_count" db:"title_edit_count"`
	ContentEditCount int       `json:"content_edit_count" db:"content_edit_count"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
