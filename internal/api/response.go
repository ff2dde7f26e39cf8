package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mini-blog-api/internal/service"
	"github.com/rs/zerolog"
)

// Response is the JSON envelope of every API reply
type Response struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, status int, data interface{}, message string) {
	c.JSON(status, Response{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Error: message})
}

// respondServiceError maps a service error onto the envelope. notFound is
// the message used for service.ErrNotFound.
func respondServiceError(c *gin.Context, log zerolog.Logger, err error, notFound string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, Response{Success: false, Errors: verr.Fields})
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

// parseID reads a positive integer path parameter. Anything else cannot
// name a stored row, so callers answer 404.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
