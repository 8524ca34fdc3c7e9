package service

import (
	"context"
	"fmt"

	"github.com/community-content-api/internal/blob"
	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/ocr"
	"github.com/community-content-api/internal/repository"
	"github.com/community-content-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// pastPaperService is the concrete implementation of PastPaperService. One
// submission attempt runs field validation, scoring, and persistence
// strictly in sequence; the blob is uploaded before the document is
// written so a failed upload never leaves a dangling reference.
type pastPaperService struct {
	papers    repository.PastPaperRepository
	blobs     blob.Store
	scorer    *ocr.Scorer
	validator *validation.Validator
	minLines  int
	log       zerolog.Logger
}

// newPastPaperService creates a new past paper service
func newPastPaperService(
	papers repository.PastPaperRepository,
	blobs blob.Store,
	scorer *ocr.Scorer,
	validator *validation.Validator,
	cfg *config.OCRConfig,
	log zerolog.Logger,
) *pastPaperService {
	return &pastPaperService{
		papers:    papers,
		blobs:     blobs,
		scorer:    scorer,
		validator: validator,
		minLines:  cfg.MinLines,
		log:       log.With().Str("service", "pastpaper").Logger(),
	}
}

// Get retrieves a past paper by ID
func (s *pastPaperService) Get(ctx context.Context, id string) (*models.PastPaper, error) {
	paper, err := s.papers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if paper == nil {
		return nil, ErrNotFound
	}
	return paper, nil
}

// Submit validates, scores, and persists a new past paper. The image is
// required; the recognized line count must reach the configured minimum or
// the submission is rejected with ErrLooksInvalid and nothing is written.
func (s *pastPaperService) Submit(ctx context.Context, input *models.SubmissionInput, image []byte, contentType string, uploader *models.Uploader) (*models.PastPaper, error) {
	fieldErrors := s.validator.ValidateFields(input)
	if len(image) == 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "image", Message: "paper image required"})
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationFailed{Fields: fieldErrors}
	}

	report, err := s.score(ctx, image)
	if err != nil {
		return nil, err
	}

	photoURL, err := s.blobs.Put(ctx, image, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	paper := &models.PastPaper{
		ID:               uuid.New().String(),
		SubjectName:      input.SubjectName,
		ExamType:         input.ExamType,
		Visibility:       input.Visibility,
		PhotoURL:         photoURL,
		Confidence:       report.AverageConfidence,
		UploaderUID:      uploader.UID,
		UploaderName:     uploader.DisplayName,
		UploaderPhotoURL: uploader.PhotoURL,
	}

	if err := s.papers.Create(ctx, paper); err != nil {
		return nil, fmt.Errorf("failed to persist past paper: %w", err)
	}

	s.log.Info().
		Str("paper_id", paper.ID).
		Str("subject", paper.SubjectName).
		Float64("confidence", paper.Confidence).
		Int("lines", report.LineCount).
		Msg("Past paper submitted")

	return paper, nil
}

// Update edits an existing past paper. When no new image is supplied and
// every field is valid, only the classification fields and timestamp are
// updated; scoring is skipped and the stored confidence and photo are left
// untouched. With a new image the full pipeline runs again.
func (s *pastPaperService) Update(ctx context.Context, id string, input *models.SubmissionInput, image []byte, contentType string) error {
	paper, err := s.papers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if paper == nil {
		return ErrNotFound
	}

	fieldErrors := s.validator.ValidateFields(input)

	if len(image) == 0 && len(fieldErrors) == 0 {
		if err := s.papers.UpdateClassification(ctx, id, input); err != nil {
			return fmt.Errorf("failed to update past paper: %w", err)
		}
		s.log.Info().Str("paper_id", id).Msg("Past paper fields updated")
		return nil
	}

	if len(image) == 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "image", Message: "paper image required"})
	}
	if len(fieldErrors) > 0 {
		return &ValidationFailed{Fields: fieldErrors}
	}

	report, err := s.score(ctx, image)
	if err != nil {
		return err
	}

	photoURL, err := s.blobs.Put(ctx, image, contentType)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	if err := s.papers.UpdateWithPhoto(ctx, id, input, photoURL, report.AverageConfidence); err != nil {
		return fmt.Errorf("failed to update past paper: %w", err)
	}

	s.log.Info().
		Str("paper_id", id).
		Float64("confidence", report.AverageConfidence).
		Msg("Past paper updated with new image")

	return nil
}

// score runs the confidence scorer and applies the line-count gate. A
// report with zero lines has a NaN average, so the count is checked before
// the average is ever used.
func (s *pastPaperService) score(ctx context.Context, image []byte) (*ocr.ScoreReport, error) {
	report, err := s.scorer.Score(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("image scoring failed: %w", err)
	}

	if report.LineCount == 0 || report.LineCount < s.minLines {
		s.log.Info().Int("lines", report.LineCount).Msg("Submission rejected by line count")
		return nil, ErrLooksInvalid
	}

	return report, nil
}
