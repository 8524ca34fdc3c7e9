package ocr

import (
	"context"
)

// Line is a single recognized text line with its confidence in [0,1]
type Line struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Recognizer is the text recognition collaborator. It returns the ordered
// lines it recognized in the image; an empty slice is a valid result for an
// image with no readable text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte, language string) ([]Line, error)
}
