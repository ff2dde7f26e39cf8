package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

// Stream handles GET /api/export?resource=...&format=...
// Rows are written directly to the response as they are read.
func (h *ExportHandler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	resource := c.Query("resource")
	if resource != "articles" && resource != "comments" {
		respondError(c, http.StatusBadRequest, "resource must be one of: articles, comments")
		return
	}

	format := c.DefaultQuery("format", service.FormatNDJSON)
	if !service.ValidFormat(format) {
		respondError(c, http.StatusBadRequest, "format must be one of: ndjson, json")
		return
	}

	var err error
	switch resource {
	case "articles":
		err = h.services.Export.StreamArticles(ctx, c.Writer, format)
	case "comments":
		err = h.services.Export.StreamComments(ctx, c.Writer, format)
	}

	if err != nil {
		h.log.Error().Err(err).Str("resource", resource).Msg("Export failed")
		// Can't return error JSON after streaming has started
		if !c.Writer.Written() {
			c.Writer.Header().Del("Content-Type")
			c.Writer.Header().Del("Content-Disposition")
			respondError(c, http.StatusInternalServerError, err.Error())
		}
	}
}
