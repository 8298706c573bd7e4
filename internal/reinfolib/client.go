package reinfolib

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"reinfolib-api/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL   = "https://www.reinfolib.mlit.go.jp/ex-api/external"
	DefaultUserAgent = "reinfolib-mcp-server/1.0.0"

	subscriptionKeyHeader = "Ocp-Apim-Subscription-Key"
	defaultResponseFormat = "geojson"
)

// Upstream endpoint paths, relative to the base URL.
const (
	PathTransactions          = "/XIT001"
	PathMunicipalities        = "/XIT002"
	PathAppraisals            = "/XCT001"
	PathRealEstatePricePoints = "/XPT001"
	PathLandPricePoints       = "/XPT002"
)

// Operation labels carried by APIError.
const (
	OpTransactionSearch          = "Transaction search"
	OpMunicipalityList           = "Municipality list request"
	OpAppraisalSearch            = "Appraisal search"
	OpLandPricePointSearch       = "Land price point search"
	OpRealEstatePricePointSearch = "Real estate price point search"
)

// Transport performs a GET against the upstream API. A non-2xx status is not
// an error at this level; err is reserved for faults where no response arrived.
type Transport interface {
	Get(ctx context.Context, path string, header http.Header, query url.Values) (status int, body []byte, err error)
}

// Client fetches upstream payloads and normalizes them into models.
type Client struct {
	transport Transport
	apiKey    string
	userAgent string
}

// NewClient creates a client that authenticates every call with apiKey.
func NewClient(transport Transport, apiKey, userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{transport: transport, apiKey: apiKey, userAgent: userAgent}
}

func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set(subscriptionKeyHeader, c.apiKey)
	h.Set("Accept", "application/json")
	h.Set("User-Agent", c.userAgent)
	return h
}

// fetch issues one GET and returns the parsed body, or an APIError labelled with operation.
func (c *Client) fetch(ctx context.Context, operation, path string, query url.Values) (gjson.Result, error) {
	status, body, err := c.transport.Get(ctx, path, c.headers(), query)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("reinfolib: transport failure")
		return gjson.Result{}, newTransportError(operation, err)
	}
	if status < 200 || status > 299 {
		log.Warn().Int("status", status).Str("path", path).Msg("reinfolib: upstream returned error status")
		return gjson.Result{}, newStatusError(operation, status, body)
	}
	if !gjson.ValidBytes(body) {
		log.Warn().Str("path", path).Int("bytes", len(body)).Msg("reinfolib: response body is not JSON")
		return gjson.Result{}, nil
	}
	return gjson.ParseBytes(body), nil
}

// SearchTransactions queries transaction prices (XIT001).
func (c *Client) SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error) {
	query := buildQuery(
		param("year", params.Year),
		param("quarter", params.Quarter),
		param("area", params.Area),
		param("city", params.City),
		param("station", params.Station),
		param("priceClassification", params.PriceClassification),
		param("language", params.Language),
	)
	body, err := c.fetch(ctx, OpTransactionSearch, PathTransactions, query)
	if err != nil {
		return nil, err
	}
	return NormalizeTransactions(body), nil
}

// GetMunicipalityList lists the municipalities of a prefecture (XIT002).
func (c *Client) GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error) {
	query := buildQuery(param("area", prefectureCode))
	body, err := c.fetch(ctx, OpMunicipalityList, PathMunicipalities, query)
	if err != nil {
		return nil, err
	}
	return NormalizeMunicipalities(body, prefectureCode), nil
}

// SearchAppraisals queries public land price notices (XCT001).
func (c *Client) SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error) {
	query := buildQuery(
		param("year", params.Year),
		param("area", params.Area),
		param("division", params.Division),
		param("language", params.Language),
	)
	body, err := c.fetch(ctx, OpAppraisalSearch, PathAppraisals, query)
	if err != nil {
		return nil, err
	}
	return NormalizeAppraisals(body), nil
}

// SearchLandPricePoints queries land price points for one map tile (XPT002).
func (c *Client) SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error) {
	query := buildQuery(
		param("response_format", orDefault(params.ResponseFormat, defaultResponseFormat)),
		param("z", strconv.Itoa(params.Z)),
		param("x", strconv.Itoa(params.X)),
		param("y", strconv.Itoa(params.Y)),
		param("year", params.Year),
		param("priceClassification", params.PriceClassification),
		param("useCategoryCode", params.UseCategoryCode),
	)
	body, err := c.fetch(ctx, OpLandPricePointSearch, PathLandPricePoints, query)
	if err != nil {
		return nil, err
	}
	return NormalizeLandPricePoints(body), nil
}

// SearchRealEstatePricePoints queries transaction price points for one map tile (XPT001).
func (c *Client) SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error) {
	query := buildQuery(
		param("response_format", orDefault(params.ResponseFormat, defaultResponseFormat)),
		param("z", strconv.Itoa(params.Z)),
		param("x", strconv.Itoa(params.X)),
		param("y", strconv.Itoa(params.Y)),
		param("from", params.From),
		param("to", params.To),
		param("priceClassification", params.PriceClassification),
		param("landTypeCode", params.LandTypeCode),
	)
	body, err := c.fetch(ctx, OpRealEstatePricePointSearch, PathRealEstatePricePoints, query)
	if err != nil {
		return nil, err
	}
	return NormalizeRealEstatePricePoints(body), nil
}

// queryParam is one optional query parameter; empty values are dropped.
type queryParam struct {
	name  string
	value string
}

func param(name, value string) queryParam {
	return queryParam{name: name, value: value}
}

func buildQuery(params ...queryParam) url.Values {
	query := make(url.Values, len(params))
	for _, p := range params {
		if p.value == "" {
			continue
		}
		query.Set(p.name, p.value)
	}
	return query
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
