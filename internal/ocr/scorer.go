package ocr

import (
	"context"
	"math"
)

// ScoreReport is the result of scoring one image. AverageConfidence is the
// arithmetic mean of the per-line confidences, unweighted by line length.
// With zero lines it is NaN; callers must branch on LineCount before using
// it, never treat it as a score of zero.
type ScoreReport struct {
	Lines             []Line  `json:"lines"`
	LineCount         int     `json:"line_count"`
	AverageConfidence float64 `json:"average_confidence"`
}

// Scorer runs text recognition over an image and reduces the per-line
// confidences to a single submission score. It is a best-effort heuristic
// for pre-filtering submissions ahead of human review, not a correctness
// oracle.
type Scorer struct {
	recognizer Recognizer
	language   string
}

// NewScorer creates a confidence scorer over the given recognizer
func NewScorer(recognizer Recognizer, language string) *Scorer {
	return &Scorer{
		recognizer: recognizer,
		language:   language,
	}
}

// Score recognizes text in the image and aggregates the line confidences
func (s *Scorer) Score(ctx context.Context, image []byte) (*ScoreReport, error) {
	lines, err := s.recognizer.Recognize(ctx, image, s.language)
	if err != nil {
		return nil, err
	}

	report := &ScoreReport{
		Lines:     lines,
		LineCount: len(lines),
	}

	if len(lines) == 0 {
		report.AverageConfidence = math.NaN()
		return report, nil
	}

	var sum float64
	for _, line := range lines {
		sum += line.Confidence
	}
	report.AverageConfidence = sum / float64(len(lines))

	return report, nil
}
