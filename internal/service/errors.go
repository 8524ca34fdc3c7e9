package service

import (
	"errors"
	"fmt"

	"github.com/community-content-api/internal/models"
)

// Policy denial reasons surfaced to the caller as human-readable strings
const (
	ReasonAlreadyDeleted = "ALREADY_DELETED_DISCUSSION"
	ReasonLocked         = "LOCKED_DISCUSSION"
)

// ErrNotFound is returned when the target record does not exist
var ErrNotFound = errors.New("record not found")

// ErrLooksInvalid is returned when the recognized line count falls below
// the accepted threshold. The submission is rejected before any write; the
// caller keeps its field values and selects a new image.
var ErrLooksInvalid = errors.New("image does not look like an exam paper")

// PolicyError is a typed denial from the edit guard. No write is attempted
// when it is returned.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string {
	return e.Reason
}

// ValidationFailed carries one error per invalid submission field. It is
// produced before any network call; the caller resolves all fields and
// resubmits.
type ValidationFailed struct {
	Fields []models.FieldError
}

func (e *ValidationFailed) Error() string {
	return fmt.Sprintf("please resolve %d errors to upload", len(e.Fields))
}
