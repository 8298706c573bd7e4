package handler

import (
	"context"
	"net/http"

	"reinfolib-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RealEstateHandler serves the reinfolib searches as REST endpoints
type RealEstateHandler struct {
	service RealEstateService
}

// RealEstateService interface for dependency injection
type RealEstateService interface {
	SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error)
	SearchProperties(ctx context.Context, params models.SearchParams) ([]models.Property, error)
	GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error)
	SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error)
	SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error)
	SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error)
}

// NewRealEstateHandler creates a new real estate handler
func NewRealEstateHandler(svc RealEstateService) *RealEstateHandler {
	return &RealEstateHandler{service: svc}
}

// Register mounts the search endpoints on rg.
func (h *RealEstateHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/transactions", h.SearchTransactions)
	rg.GET("/properties", h.SearchProperties)
	rg.GET("/municipalities", h.GetMunicipalities)
	rg.GET("/appraisals", h.SearchAppraisals)
	rg.GET("/land-price-points", h.SearchLandPricePoints)
	rg.GET("/real-estate-price-points", h.SearchRealEstatePricePoints)
}

// SearchTransactions handles GET /api/v1/transactions requests
//
//	@Summary	Search transaction prices
//	@Tags		real-estate
//	@Produce	json
//	@Param		year				query		string	true	"Year (YYYY)"
//	@Param		quarter				query		string	false	"Quarter (1-4)"
//	@Param		area				query		string	false	"Prefecture code"
//	@Param		city				query		string	false	"Municipal code"
//	@Param		station				query		string	false	"Station group code"
//	@Param		stationName			query		string	false	"Station name"
//	@Param		priceClassification	query		string	false	"01 transaction price, 02 contract price"
//	@Param		language			query		string	false	"ja or en"
//	@Success	200					{array}		models.Transaction
//	@Failure	400					{object}	ErrorResponse
//	@Failure	502					{object}	ErrorResponse
//	@Router		/api/v1/transactions [get]
func (h *RealEstateHandler) SearchTransactions(c *gin.Context) {
	var params models.TransactionSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	transactions, err := h.service.SearchTransactions(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// SearchProperties handles GET /api/v1/properties requests
//
//	@Summary	Search properties with price and area filters
//	@Tags		real-estate
//	@Produce	json
//	@Param		prefecture		query		string	false	"Prefecture code"
//	@Param		city			query		string	false	"Municipal code"
//	@Param		year			query		string	false	"Year (YYYY), defaults to the current year"
//	@Param		minPrice		query		number	false	"Minimum price"
//	@Param		maxPrice		query		number	false	"Maximum price"
//	@Param		propertyType	query		string	false	"Property type"
//	@Param		minArea			query		number	false	"Minimum area"
//	@Param		maxArea			query		number	false	"Maximum area"
//	@Success	200				{array}		models.Property
//	@Failure	400				{object}	ErrorResponse
//	@Failure	502				{object}	ErrorResponse
//	@Router		/api/v1/properties [get]
func (h *RealEstateHandler) SearchProperties(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	properties, err := h.service.SearchProperties(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// GetMunicipalities handles GET /api/v1/municipalities requests
//
//	@Summary	List municipalities of a prefecture
//	@Tags		real-estate
//	@Produce	json
//	@Param		prefectureCode	query		string	false	"Prefecture code, defaults to 13"
//	@Success	200				{array}		models.Municipality
//	@Failure	502				{object}	ErrorResponse
//	@Router		/api/v1/municipalities [get]
func (h *RealEstateHandler) GetMunicipalities(c *gin.Context) {
	var params models.MunicipalityListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	municipalities, err := h.service.GetMunicipalityList(c.Request.Context(), params.PrefectureCode)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, municipalities)
}

// SearchAppraisals handles GET /api/v1/appraisals requests
//
//	@Summary	Search official land price appraisals
//	@Tags		real-estate
//	@Produce	json
//	@Param		year		query		string	true	"Year (2021-2025)"
//	@Param		area		query		string	true	"Prefecture code"
//	@Param		division	query		string	true	"Land use division code"
//	@Param		language	query		string	false	"ja or en"
//	@Success	200			{array}		models.Appraisal
//	@Failure	400			{object}	ErrorResponse
//	@Failure	502			{object}	ErrorResponse
//	@Router		/api/v1/appraisals [get]
func (h *RealEstateHandler) SearchAppraisals(c *gin.Context) {
	var params models.AppraisalSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	appraisals, err := h.service.SearchAppraisals(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, appraisals)
}

// SearchLandPricePoints handles GET /api/v1/land-price-points requests
//
//	@Summary	Land price points of a map tile
//	@Tags		geo
//	@Produce	json
//	@Param		z					query		int		true	"Zoom level (11-15)"
//	@Param		x					query		int		true	"Tile X"
//	@Param		y					query		int		true	"Tile Y"
//	@Param		year				query		string	false	"Year (YYYY)"
//	@Param		priceClassification	query		string	false	"0 land price notice, 1 prefectural survey"
//	@Param		useCategoryCode		query		string	false	"Use category code"
//	@Param		response_format		query		string	false	"geojson or pbf"
//	@Success	200					{array}		models.LandPricePoint
//	@Failure	400					{object}	ErrorResponse
//	@Failure	502					{object}	ErrorResponse
//	@Router		/api/v1/land-price-points [get]
func (h *RealEstateHandler) SearchLandPricePoints(c *gin.Context) {
	var params models.LandPricePointSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	points, err := h.service.SearchLandPricePoints(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}

// SearchRealEstatePricePoints handles GET /api/v1/real-estate-price-points requests
//
//	@Summary	Transaction price points of a map tile
//	@Tags		geo
//	@Produce	json
//	@Param		z					query		int		true	"Zoom level (11-15)"
//	@Param		x					query		int		true	"Tile X"
//	@Param		y					query		int		true	"Tile Y"
//	@Param		from				query		string	true	"Period start (YYYYN)"
//	@Param		to					query		string	true	"Period end (YYYYN)"
//	@Param		priceClassification	query		string	false	"Price classification"
//	@Param		landTypeCode		query		string	false	"Land type code"
//	@Param		response_format		query		string	false	"geojson or pbf"
//	@Success	200					{array}		models.RealEstatePricePoint
//	@Failure	400					{object}	ErrorResponse
//	@Failure	502					{object}	ErrorResponse
//	@Router		/api/v1/real-estate-price-points [get]
func (h *RealEstateHandler) SearchRealEstatePricePoints(c *gin.Context) {
	var params models.RealEstatePricePointSearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badQuery(c, err)
		return
	}

	points, err := h.service.SearchRealEstatePricePoints(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, points)
}
