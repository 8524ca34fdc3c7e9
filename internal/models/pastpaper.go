package models

import (
	"time"
)

// PastPaper represents a durable past-paper submission: a scanned exam-paper
// image held in the blob store plus classification fields and moderation
// flags. The ID never changes after creation.
type PastPaper struct {
	ID               string    `json:"id" db:"id"`
	SubjectName      string    `json:"subject_name" db:"subject_name"`
	ExamType         string    `json:"exam_type" db:"exam_type"`
	Visibility       bool      `json:"visibility" db:"visibility"`
	PhotoURL         string    `json:"photo_url" db:"photo_url"`
	Confidence       float64   `json:"confidence" db:"confidence"`
	UploaderUID      string    `json:"uploader_uid" db:"uploader_uid"`
	UploaderName     string    `json:"uploader_name" db:"uploader_name"`
	UploaderPhotoURL string    `json:"uploader_photo_url" db:"uploader_photo_url"`
	VotesCount       int       `json:"votes_count" db:"votes_count"`
	IsLocked         bool      `json:"is_locked" db:"is_locked"`
	Deleted          bool      `json:"deleted" db:"deleted"`
	Spam             bool      `json:"spam" db:"spam"`
	UploadedAt       time.Time `json:"uploaded_at" db:"uploaded_at"`
}

// ValidExamTypes defines the allowed exam type values
var ValidExamTypes = map[string]bool{
	"mid":   true,
	"final": true,
}

// Uploader identifies the submitting user. The caller supplies an already
// authenticated identity; this service does not verify it.
type Uploader struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// SubmissionInput holds the user-supplied classification fields collected
// before a past paper is scored and persisted.
type SubmissionInput struct {
	SubjectName string `json:"subject_name"`
	ExamType    string `json:"exam_type"`
	Visibility  bool   `json:"visibility"`
}

// FieldError represents a single invalid submission field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
