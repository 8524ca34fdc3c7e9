package api

import (
	"net/http"

	"github.com/community-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// DiscussionHandler handles discussion endpoints
type DiscussionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewDiscussionHandler creates a new DiscussionHandler
func NewDiscussionHandler(services *service.Services, log zerolog.Logger) *DiscussionHandler {
	return &DiscussionHandler{
		services: services,
		log:      log.With().Str("handler", "discussion").Logger(),
	}
}

// CreateDiscussion handles POST /v1/discussions
func (h *DiscussionHandler) CreateDiscussion(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		AuthorID string `json:"author_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Title == "" || req.Content == "" || req.AuthorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, content and author_id are required"})
		return
	}

	discussion, err := h.services.Discussion.Create(ctx, req.Title, req.Content, req.AuthorID)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, discussion)
}

// GetDiscussion handles GET /v1/discussions/:id
func (h *DiscussionHandler) GetDiscussion(c *gin.Context) {
	discussion, err := h.services.Discussion.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, discussion)
}

// UpdateTitle handles PATCH /v1/discussions/:id/title
func (h *DiscussionHandler) UpdateTitle(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if err := h.services.Discussion.UpdateTitle(c.Request.Context(), c.Param("id"), req.Title); err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "title updated"})
}

// UpdateContent handles PATCH /v1/discussions/:id/content
func (h *DiscussionHandler) UpdateContent(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	if err := h.services.Discussion.UpdateContent(c.Request.Context(), c.Param("id"), req.Content); err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "content updated"})
}

// SoftDeleteDiscussion handles POST /v1/discussions/:id/soft-delete
func (h *DiscussionHandler) SoftDeleteDiscussion(c *gin.Context) {
	if err := h.services.Discussion.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "discussion hidden"})
}

// DeleteDiscussion handles DELETE /v1/discussions/:id. The response only
// confirms the discussion itself is gone; comment cleanup continues in the
// background.
func (h *DiscussionHandler) DeleteDiscussion(c *gin.Context) {
	if err := h.services.Discussion.DeleteWithComments(c.Request.Context(), c.Param("id")); err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "discussion deleted"})
}

// AddComment handles POST /v1/discussions/:id/comments
func (h *DiscussionHandler) AddComment(c *gin.Context) {
	var req struct {
		UserID string `json:"user_id"`
		Body   string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Body == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and body are required"})
		return
	}

	comment, err := h.services.Discussion.AddComment(c.Request.Context(), c.Param("id"), req.UserID, req.Body)
	if err != nil {
		renderServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
