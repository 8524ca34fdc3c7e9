package mocks

import (
	"context"
	"fmt"

	"github.com/community-content-api/internal/blob"
	"github.com/community-content-api/internal/ocr"
)

// MockBlobStore is a mock implementation of blob.Store
type MockBlobStore struct {
	Puts     [][]byte
	PutError error
	URL      string
}

// Verify interface compliance
var _ blob.Store = (*MockBlobStore)(nil)

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{URL: "https://blobs.test/object"}
}

func (m *MockBlobStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if m.PutError != nil {
		return "", m.PutError
	}
	m.Puts = append(m.Puts, data)
	return fmt.Sprintf("%s-%d", m.URL, len(m.Puts)), nil
}

// MockRecognizer is a mock implementation of ocr.Recognizer
type MockRecognizer struct {
	Lines          []ocr.Line
	RecognizeError error
	Calls          int
}

// Verify interface compliance
var _ ocr.Recognizer = (*MockRecognizer)(nil)

// NewMockRecognizer returns a recognizer that always yields the given lines
func NewMockRecognizer(lines ...ocr.Line) *MockRecognizer {
	return &MockRecognizer{Lines: lines}
}

// LinesWithConfidence builds n lines all carrying the same confidence
func LinesWithConfidence(n int, confidence float64) []ocr.Line {
	lines := make([]ocr.Line, n)
	for i := range lines {
		lines[i] = ocr.Line{Text: fmt.Sprintf("line %d", i+1), Confidence: confidence}
	}
	return lines
}

func (m *MockRecognizer) Recognize(ctx context.Context, image []byte, language string) ([]ocr.Line, error) {
	m.Calls++
	if m.RecognizeError != nil {
		return nil, m.RecognizeError
	}
	return m.Lines, nil
}
