package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/models"
	"github.com/community-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PastPaperHandler handles past paper endpoints. It is the input collector
// for the submission pipeline: it gathers the multipart form and the
// caller-supplied identity, and renders the pipeline's typed outcomes.
type PastPaperHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewPastPaperHandler creates a new PastPaperHandler
func NewPastPaperHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *PastPaperHandler {
	return &PastPaperHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "pastpaper").Logger(),
	}
}

// CreatePastPaper handles POST /v1/pastpapers
// Accepts a multipart form with the image file and classification fields.
func (h *PastPaperHandler) CreatePastPaper(c *gin.Context) {
	ctx := c.Request.Context()

	uploader, ok := h.uploaderFromHeaders(c)
	if !ok {
		return
	}

	input := h.inputFromForm(c)

	image, contentType, ok := h.readImage(c)
	if !ok {
		return
	}

	paper, err := h.services.PastPaper.Submit(ctx, input, image, contentType, uploader)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("paper_id", paper.ID).
		Str("subject", paper.SubjectName).
		Str("uploader_uid", uploader.UID).
		Msg("Past paper created")

	c.JSON(http.StatusCreated, paper)
}

// GetPastPaper handles GET /v1/pastpapers/:id
func (h *PastPaperHandler) GetPastPaper(c *gin.Context) {
	paper, err := h.services.PastPaper.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, paper)
}

// UpdatePastPaper handles PUT /v1/pastpapers/:id. The image part is
// optional: without it, only the classification fields are updated.
func (h *PastPaperHandler) UpdatePastPaper(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	input := h.inputFromForm(c)

	image, contentType, ok := h.readImage(c)
	if !ok {
		return
	}

	if err := h.services.PastPaper.Update(ctx, id, input, image, contentType); err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "past paper updated"})
}

// uploaderFromHeaders reads the caller-supplied identity. Authentication is
// the caller's responsibility; the UID is still required.
func (h *PastPaperHandler) uploaderFromHeaders(c *gin.Context) (*models.Uploader, bool) {
	uid := c.GetHeader("X-User-UID")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-User-UID header is required"})
		return nil, false
	}
	return &models.Uploader{
		UID:         uid,
		DisplayName: c.GetHeader("X-User-Name"),
		PhotoURL:    c.GetHeader("X-User-Photo"),
	}, true
}

// inputFromForm collects the classification fields from the multipart form
func (h *PastPaperHandler) inputFromForm(c *gin.Context) *models.SubmissionInput {
	visibility := true
	if v := c.PostForm("visibility"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			visibility = parsed
		}
	}

	return &models.SubmissionInput{
		SubjectName: c.PostForm("subject_name"),
		ExamType:    c.PostForm("exam_type"),
		Visibility:  visibility,
	}
}

// readImage reads the uploaded image part, enforcing size and type limits
func (h *PastPaperHandler) readImage(c *gin.Context) ([]byte, string, bool) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// Missing image is a field error the pipeline reports alongside
		// the other invalid fields.
		return nil, "", true
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if ok := h.checkImage(c, header.Size, contentType); !ok {
		return nil, "", false
	}

	image, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return nil, "", false
	}

	return image, contentType, true
}

func (h *PastPaperHandler) checkImage(c *gin.Context, size int64, contentType string) bool {
	if size > h.cfg.Upload.MaxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("image too large, max size is %d MB", h.cfg.Upload.MaxImageSize/(1024*1024)),
		})
		return false
	}
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded file must be an image"})
		return false
	}
	return true
}
