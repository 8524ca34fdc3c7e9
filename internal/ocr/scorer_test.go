package ocr_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/community-content-api/internal/mocks"
	"github.com/community-content-api/internal/ocr"
)

func TestScorer_ArithmeticMean(t *testing.T) {
	recognizer := mocks.NewMockRecognizer(
		ocr.Line{Text: "a much longer line than the others", Confidence: 0.9},
		ocr.Line{Text: "b", Confidence: 0.5},
		ocr.Line{Text: "c", Confidence: 0.7},
	)
	scorer := ocr.NewScorer(recognizer, "eng")

	report, err := scorer.Score(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if report.LineCount != 3 {
		t.Errorf("Expected 3 lines, got %d", report.LineCount)
	}
	// Unweighted mean: line length must not matter
	if math.Abs(report.AverageConfidence-0.7) > 1e-9 {
		t.Errorf("Expected 0.7, got %v", report.AverageConfidence)
	}
}

func TestScorer_ZeroLinesYieldNaN(t *testing.T) {
	scorer := ocr.NewScorer(mocks.NewMockRecognizer(), "eng")

	report, err := scorer.Score(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if report.LineCount != 0 {
		t.Errorf("Expected 0 lines, got %d", report.LineCount)
	}
	// Undefined, not zero: a zero score would sort below every real score
	if !math.IsNaN(report.AverageConfidence) {
		t.Errorf("Expected NaN average, got %v", report.AverageConfidence)
	}
}

func TestScorer_SingleLine(t *testing.T) {
	scorer := ocr.NewScorer(mocks.NewMockRecognizer(ocr.Line{Text: "only", Confidence: 0.42}), "eng")

	report, err := scorer.Score(context.Background(), []byte("img"))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if report.AverageConfidence != 0.42 {
		t.Errorf("Expected 0.42, got %v", report.AverageConfidence)
	}
}

func TestScorer_RecognizerError(t *testing.T) {
	recognizer := mocks.NewMockRecognizer()
	recognizer.RecognizeError = errors.New("connection refused")
	scorer := ocr.NewScorer(recognizer, "eng")

	_, err := scorer.Score(context.Background(), []byte("img"))
	if err == nil {
		t.Fatal("Expected recognizer error to propagate")
	}
}
