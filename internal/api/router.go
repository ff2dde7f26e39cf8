package api

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mini-blog-api/internal/config"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
)

const (
	serviceName    = "Mini-blog API"
	serviceVersion = "1.0.0"

	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// Storage is the part of the database handle the router reports on
type Storage interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, storage Storage, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.CORSAllowedOrigins))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	exportHandler := NewExportHandler(services, log)

	router.GET("/", apiInfo)
	router.GET("/health", healthCheck(storage))
	router.GET("/metrics", metricsHandler(services, storage))

	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.List)
			articles.POST("", articleHandler.Create)
			articles.GET("/:id", articleHandler.Get)
			articles.PUT("/:id", articleHandler.Update)
			articles.DELETE("/:id", articleHandler.Delete)
			articles.GET("/:id/comments", articleHandler.ListComments)
		}

		comments := api.Group("/comments")
		{
			comments.POST("", commentHandler.Create)
			comments.DELETE("/:id", commentHandler.Delete)
		}

		api.GET("/export", exportHandler.Stream)
	}

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Route not found")
	})

	return router
}

// apiInfo describes the service and its endpoints
func apiInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": serviceVersion,
		"status":  "running",
		"endpoints": gin.H{
			"health":        "/health",
			"metrics":       "/metrics",
			"articles":      "/api/articles",
			"article_by_id": "/api/articles/{id}",
			"comments":      "/api/articles/{articleId}/comments",
			"export":        "/api/export",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// healthCheck returns the health status
func healthCheck(storage Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := storage.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unavailable",
				"message":   "Database unreachable",
				"error":     err.Error(),
				"timestamp": time.Now().Format(time.RFC3339),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Mini-blog API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// metricsHandler returns row counts and connection pool statistics
func metricsHandler(services *service.Services, storage Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		articlesCount, err := services.Article.Count(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}
		commentsCount, err := services.Comment.Count(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, err.Error())
			return
		}

		stats := storage.Stats()
		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"articles": articlesCount,
				"comments": commentsCount,
			},
			"pool": gin.H{
				"open_connections": stats.OpenConnections,
				"in_use":           stats.InUse,
				"idle":             stats.Idle,
				"wait_count":       stats.WaitCount,
				"wait_duration_ms": stats.WaitDuration.Milliseconds(),
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Msg("Panic recovered")
				respondError(c, http.StatusInternalServerError, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware propagates X-Request-ID, generating one when absent
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
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
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS. allowed is "*" or a comma-separated origin list.
func corsMiddleware(allowed string) gin.HandlerFunc {
	origins := make(map[string]bool)
	wildcard := allowed == "" || allowed == "*"
	for _, o := range strings.Split(allowed, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case wildcard:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case origins[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+requestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
