package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"reinfolib-api/internal/models"
	"reinfolib-api/internal/reinfolib"

	"github.com/rs/zerolog/log"
)

// ErrInvalidParams marks request parameters rejected before any upstream call.
var ErrInvalidParams = errors.New("service: invalid parameters")

var (
	yearPattern         = regexp.MustCompile(`^[0-9]{4}$`)
	periodPattern       = regexp.MustCompile(`^[0-9]{5}$`)
	buildingYearPattern = regexp.MustCompile(`^[0-9]{4}`)
)

const (
	minTileZoom = 11
	maxTileZoom = 15
)

// ReinfolibClient is the upstream facade the service depends on
type ReinfolibClient interface {
	SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error)
	GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error)
	SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error)
	SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error)
	SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error)
}

// StationResolver turns a station name into a station group code.
// An empty code with a nil error means no station matched.
type StationResolver interface {
	LookupCode(ctx context.Context, name string) (string, error)
}

// RealEstateService validates requests and forwards them to the reinfolib API
type RealEstateService struct {
	client   ReinfolibClient
	stations StationResolver
	now      func() time.Time
}

// NewRealEstateService creates a new real estate service. stations may be nil
// when no station database is configured.
func NewRealEstateService(client ReinfolibClient, stations StationResolver) *RealEstateService {
	return &RealEstateService{client: client, stations: stations, now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParams, fmt.Sprintf(format, args...))
}

// SearchTransactions searches transaction prices. A station name is resolved
// to its group code when no code is given.
func (s *RealEstateService) SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error) {
	if !yearPattern.MatchString(params.Year) {
		return nil, invalid("year must be a 4-digit year, got %q", params.Year)
	}

	if params.Station == "" && params.StationName != "" {
		code, err := s.resolveStation(ctx, params.StationName)
		if err != nil {
			return nil, err
		}
		params.Station = code
	}

	return s.client.SearchTransactions(ctx, params)
}

func (s *RealEstateService) resolveStation(ctx context.Context, name string) (string, error) {
	if s.stations == nil {
		return "", invalid("station lookup by name is not available")
	}
	code, err := s.stations.LookupCode(ctx, name)
	if err != nil {
		return "", fmt.Errorf("service: failed to resolve station %q: %w", name, err)
	}
	if code == "" {
		return "", invalid("unknown station %q", name)
	}
	log.Debug().Str("station", name).Str("code", code).Msg("service: resolved station name")
	return code, nil
}

// GetMunicipalityList lists municipalities, defaulting to Tokyo.
func (s *RealEstateService) GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error) {
	if prefectureCode == "" {
		prefectureCode = reinfolib.DefaultPrefectureCode
	}
	return s.client.GetMunicipalityList(ctx, prefectureCode)
}

// SearchAppraisals searches public land price notices.
func (s *RealEstateService) SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error) {
	if !yearPattern.MatchString(params.Year) {
		return nil, invalid("year must be a 4-digit year, got %q", params.Year)
	}
	if params.Area == "" {
		return nil, invalid("area is required")
	}
	if !reinfolib.IsLandUseDivision(params.Division) {
		return nil, invalid("unknown land use division %q", params.Division)
	}
	return s.client.SearchAppraisals(ctx, params)
}

// SearchLandPricePoints searches land price points in one map tile.
func (s *RealEstateService) SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error) {
	if err := validateTile(params.Z, params.X, params.Y); err != nil {
		return nil, err
	}
	return s.client.SearchLandPricePoints(ctx, params)
}

// SearchRealEstatePricePoints searches transaction price points in one map tile.
func (s *RealEstateService) SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error) {
	if err := validateTile(params.Z, params.X, params.Y); err != nil {
		return nil, err
	}
	if !periodPattern.MatchString(params.From) || !periodPattern.MatchString(params.To) {
		return nil, invalid("from and to must be YYYYN periods, got %q and %q", params.From, params.To)
	}
	return s.client.SearchRealEstatePricePoints(ctx, params)
}

func validateTile(z, x, y int) error {
	if z < minTileZoom || z > maxTileZoom {
		return invalid("zoom level must be between %d and %d, got %d", minTileZoom, maxTileZoom, z)
	}
	if x < 0 || y < 0 {
		return invalid("tile coordinates must not be negative, got x=%d y=%d", x, y)
	}
	return nil
}

// SearchProperties runs a transaction search for one prefecture and year and
// reshapes the results into generic properties. Year defaults to the current
// year and prefecture to Tokyo.
func (s *RealEstateService) SearchProperties(ctx context.Context, params models.SearchParams) ([]models.Property, error) {
	currentYear := s.now().Year()

	query := models.TransactionSearchParams{
		Year: params.Year,
		Area: params.Prefecture,
		City: params.City,
	}
	if query.Year == "" {
		query.Year = strconv.Itoa(currentYear)
	}
	if query.Area == "" {
		query.Area = reinfolib.DefaultPrefectureCode
	}

	transactions, err := s.SearchTransactions(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("Property search failed: %w", err)
	}

	properties := make([]models.Property, 0, len(transactions))
	for _, tx := range transactions {
		p := toProperty(tx, currentYear)
		if matchesFilters(p, params) {
			properties = append(properties, p)
		}
	}
	return properties, nil
}

func toProperty(tx models.Transaction, currentYear int) models.Property {
	label := tx.Municipality + " " + tx.DistrictName
	return models.Property{
		ID:           tx.Municipality + "-" + tx.DistrictName,
		Name:         label,
		Address:      label,
		Price:        tx.UnitPrice,
		PropertyType: tx.Type,
		Area:         tx.TotalFloorArea,
		BuildingAge:  buildingAge(tx.BuildingYear, currentYear),
		Description:  tx.Use + " - " + tx.Structure,
	}
}

// buildingAge is 0 unless buildingYear starts with a 4-digit year ("1998" or "1998年").
func buildingAge(buildingYear string, currentYear int) int {
	digits := buildingYearPattern.FindString(buildingYear)
	if digits == "" {
		return 0
	}
	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return currentYear - year
}

func matchesFilters(p models.Property, params models.SearchParams) bool {
	if params.MinPrice != nil && p.Price < *params.MinPrice {
		return false
	}
	if params.MaxPrice != nil && p.Price > *params.MaxPrice {
		return false
	}
	if params.MinArea != nil && p.Area < *params.MinArea {
		return false
	}
	if params.MaxArea != nil && p.Area > *params.MaxArea {
		return false
	}
	if params.PropertyType != "" && p.PropertyType != params.PropertyType {
		return false
	}
	return true
}
