package validation

import (
	"fmt"

	"github.com/community-content-api/internal/models"
)

// Validator checks user-supplied submission fields against the fixed
// allowed sets. All field checks run before any network call; the caller
// gets one error per invalid field and resubmits once all are resolved.
type Validator struct {
	subjectCache map[string]bool
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		subjectCache: make(map[string]bool),
	}
}

// SetSubjectCache sets the allowed subject names
func (v *Validator) SetSubjectCache(names []string) {
	for _, name := range names {
		v.subjectCache[name] = true
	}
}

// AddSubject adds a subject name to the allowed set
func (v *Validator) AddSubject(name string) {
	v.subjectCache[name] = true
}

// ValidateFields validates the classification fields of a past paper
// submission. Image presence is the pipeline's concern, not a field check:
// the edit flow may legitimately omit the image.
func (v *Validator) ValidateFields(input *models.SubmissionInput) []models.FieldError {
	var errors []models.FieldError

	// Validate subject
	if input.SubjectName == "" {
		errors = append(errors, models.FieldError{Field: "subject_name", Message: "subject name is required"})
	} else if !v.subjectCache[input.SubjectName] {
		errors = append(errors, models.FieldError{Field: "subject_name", Message: "invalid subject name"})
	}

	// Validate exam type
	if input.ExamType == "" {
		errors = append(errors, models.FieldError{Field: "exam_type", Message: "exam type is required"})
	} else if !models.ValidExamTypes[input.ExamType] {
		errors = append(errors, models.FieldError{
			Field:   "exam_type",
			Message: fmt.Sprintf("invalid exam type %q, must be one of: mid, final", input.ExamType),
		})
	}

	return errors
}
