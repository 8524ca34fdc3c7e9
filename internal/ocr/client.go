package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/community-content-api/internal/config"
	"github.com/rs/zerolog"
)

// Client talks to a tesseract-server style recognition endpoint. The wire
// contract is POST {endpoint}/recognize with a multipart body (file + lang)
// answered with {"lines": [{"text": ..., "confidence": ...}]}.
type Client struct {
	endpoint string
	http     *http.Client
	log      zerolog.Logger
}

// NewClient creates a recognition client. The request timeout bounds the
// whole call; recognition of large scans is slow, so it should stay generous.
func NewClient(cfg *config.OCRConfig, log zerolog.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
		log:      log.With().Str("component", "ocr").Logger(),
	}
}

type recognizeResponse struct {
	Lines []Line `json:"lines"`
}

// Recognize sends the image to the recognition service and returns the
// recognized lines
func (c *Client) Recognize(ctx context.Context, image []byte, language string) ([]Line, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "image")
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(image); err != nil {
		return nil, err
	}
	if err := writer.WriteField("lang", language); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/recognize", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("recognition request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("recognition service returned %d: %s", resp.StatusCode, string(data))
	}

	var parsed recognizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode recognition response: %w", err)
	}

	c.log.Debug().Int("lines", len(parsed.Lines)).Msg("Recognition completed")

	return parsed.Lines, nil
}
