package models

import (
	"time"
)

// Comment represents a comment on a discussion. Comments are created
// independently and cleaned up one by one after their discussion is
// destroyed.
type Comment struct {
	ID           string    `json:"id" db:"id"`
	DiscussionID string    `json:"discussion_id" db:"discussion_id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
