package handler

import (
	"context"
	"net/http"
	"strconv"

	"reinfolib-api/internal/models"

	"github.com/gin-gonic/gin"
)

// StationHandler handles station lookup requests
type StationHandler struct {
	service StationService
}

// StationService interface for dependency injection
type StationService interface {
	Search(ctx context.Context, query string) ([]models.Station, error)
	GetByCode(ctx context.Context, code string) (*models.Station, error)
	Nearest(ctx context.Context, lat, lon float64) (*models.Station, error)
}

// NewStationHandler creates a new station handler
func NewStationHandler(svc StationService) *StationHandler {
	return &StationHandler{service: svc}
}

// Register mounts the station endpoints on rg.
func (h *StationHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/stations", h.Search)
	rg.GET("/stations/nearest", h.Nearest)
	rg.GET("/stations/:code", h.GetByCode)
}

// Search handles GET /api/v1/stations requests
//
//	@Summary	Search stations by name or code
//	@Tags		stations
//	@Produce	json
//	@Param		q	query		string	true	"Name or code fragment"
//	@Success	200	{array}		models.Station
//	@Failure	400	{object}	ErrorResponse
//	@Router		/api/v1/stations [get]
func (h *StationHandler) Search(c *gin.Context) {
	var params models.StationSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}
	if params.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	stations, err := h.service.Search(c.Request.Context(), params.Query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stations)
}

// GetByCode handles GET /api/v1/stations/:code requests
//
//	@Summary	Get a station by group code
//	@Tags		stations
//	@Produce	json
//	@Param		code	path		string	true	"Station group code"
//	@Success	200		{object}	models.Station
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/v1/stations/{code} [get]
func (h *StationHandler) GetByCode(c *gin.Context) {
	station, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	if station == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "station not found"})
		return
	}

	c.JSON(http.StatusOK, station)
}

// Nearest handles GET /api/v1/stations/nearest requests
//
//	@Summary	Find the station nearest to a coordinate
//	@Tags		stations
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lon	query		number	true	"Longitude"
//	@Success	200	{object}	models.Station
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/v1/stations/nearest [get]
func (h *StationHandler) Nearest(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	station, err := h.service.Nearest(c.Request.Context(), lat, lon)
	if err != nil {
		writeError(c, err)
		return
	}

	if station == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no station found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, station)
}
