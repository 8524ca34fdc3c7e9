package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/repository"
	"github.com/community-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	discussionHandler := NewDiscussionHandler(services, log)
	pastPaperHandler := NewPastPaperHandler(services, cfg, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))

	// API v1
	v1 := router.Group("/v1")
	{
		// Discussion endpoints
		discussions := v1.Group("/discussions")
		{
			discussions.POST("", discussionHandler.CreateDiscussion)
			discussions.GET("/:id", discussionHandler.GetDiscussion)
			discussions.PATCH("/:id/title", discussionHandler.UpdateTitle)
			discussions.PATCH("/:id/content", discussionHandler.UpdateContent)
			discussions.POST("/:id/soft-delete", discussionHandler.SoftDeleteDiscussion)
			discussions.DELETE("/:id", discussionHandler.DeleteDiscussion)
			discussions.POST("/:id/comments", discussionHandler.AddComment)
		}

		// Past paper endpoints
		papers := v1.Group("/pastpapers")
		{
			papers.POST("", pastPaperHandler.CreatePastPaper)
			papers.GET("/:id", pastPaperHandler.GetPastPaper)
			papers.PUT("/:id", pastPaperHandler.UpdatePastPaper)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "community-content-api",
	})
}

// metricsHandler returns record counts
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		discussionsCount, _ := repos.Discussion.Count(ctx)
		commentsCount, _ := repos.Comment.Count(ctx)
		papersCount, _ := repos.PastPaper.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"discussions": discussionsCount,
				"comments":    commentsCount,
				"past_papers": papersCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// renderServiceError maps the service error taxonomy onto HTTP responses.
// Every rejection carries a distinct human-readable reason so the client
// never has to infer the cause.
func renderServiceError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *service.ValidationFailed
	var policyErr *service.PolicyError

	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  validationErr.Error(),
			"errors": validationErr.Fields,
		})
	case errors.As(err, &policyErr):
		c.JSON(http.StatusForbidden, gin.H{"error": policyErr.Reason})
	case errors.Is(err, service.ErrLooksInvalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-UID, X-User-Name, X-User-Photo")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
