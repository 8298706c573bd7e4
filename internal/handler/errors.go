package handler

import (
	"errors"
	"net/http"

	"reinfolib-api/internal/reinfolib"
	"reinfolib-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeError maps service and upstream errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	var apiErr *reinfolib.APIError
	switch {
	case errors.Is(err, service.ErrInvalidParams):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &apiErr):
		log.Warn().Err(err).Int("status", apiErr.StatusCode).Str("path", c.FullPath()).Msg("upstream request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badQuery(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
}
