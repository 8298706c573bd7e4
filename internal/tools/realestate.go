package tools

import (
	"context"
	"encoding/json"

	"reinfolib-api/internal/models"
)

// Tool names exposed to agent clients.
const (
	SearchTransactions          = "search_transactions"
	SearchProperties            = "search_properties"
	GetMunicipalities           = "get_municipalities"
	SearchAppraisals            = "search_appraisals"
	SearchLandPricePoints       = "search_land_price_points"
	SearchRealEstatePricePoints = "search_real_estate_price_points"
	SearchStations              = "search_stations"
)

// RealEstateService is the request facade the real-estate tools call.
type RealEstateService interface {
	SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error)
	SearchProperties(ctx context.Context, params models.SearchParams) ([]models.Property, error)
	GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error)
	SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error)
	SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error)
	SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error)
}

// StationSearcher backs the optional station tool.
type StationSearcher interface {
	Search(ctx context.Context, query string) ([]models.Station, error)
}

type entry struct {
	def     Definition
	handler Handler
}

// NewRealEstateRegistry registers every real-estate tool. The station tool is
// added only when stations is non-nil.
func NewRealEstateRegistry(svc RealEstateService, stations StationSearcher) (*Registry, error) {
	r := NewRegistry()

	entries := []entry{
		{
			def: Definition{
				Name:        SearchTransactions,
				Description: "Search for real estate transaction data. Use specific parameters to reduce dataset size and avoid response limits.",
				InputSchema: GenerateSchema[models.TransactionSearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.TransactionSearchParams](args)
				if err != nil {
					return nil, err
				}
				return svc.SearchTransactions(ctx, params)
			},
		},
		{
			def: Definition{
				Name:        SearchProperties,
				Description: "Search for real estate properties with filtering options",
				InputSchema: GenerateSchema[models.SearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.SearchParams](args)
				if err != nil {
					return nil, err
				}
				return svc.SearchProperties(ctx, params)
			},
		},
		{
			def: Definition{
				Name:        GetMunicipalities,
				Description: "Get list of municipalities within a prefecture. Use this to find correct municipal codes for search_transactions.",
				InputSchema: GenerateSchema[models.MunicipalityListParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.MunicipalityListParams](args)
				if err != nil {
					return nil, err
				}
				return svc.GetMunicipalityList(ctx, params.PrefectureCode)
			},
		},
		{
			def: Definition{
				Name:        SearchAppraisals,
				Description: "Search for official land price data (地価公示). WARNING: Large prefectures like Tokyo (area=13) return 2000+ records and may exceed response limits.",
				InputSchema: GenerateSchema[models.AppraisalSearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.AppraisalSearchParams](args)
				if err != nil {
					return nil, err
				}
				return svc.SearchAppraisals(ctx, params)
			},
		},
		{
			def: Definition{
				Name:        SearchLandPricePoints,
				Description: "Search for land price points (地価公示・地価調査) in GeoJSON format using map tile coordinates. Requires tile coordinates (z, x, y) for specific geographic areas.",
				InputSchema: GenerateSchema[models.LandPricePointSearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.LandPricePointSearchParams](args)
				if err != nil {
					return nil, err
				}
				return svc.SearchLandPricePoints(ctx, params)
			},
		},
		{
			def: Definition{
				Name:        SearchRealEstatePricePoints,
				Description: "Search for real estate transaction price points (不動産価格情報) in GeoJSON format using map tile coordinates. Returns transaction data including prices, property details, and locations.",
				InputSchema: GenerateSchema[models.RealEstatePricePointSearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.RealEstatePricePointSearchParams](args)
				if err != nil {
					return nil, err
				}
				return svc.SearchRealEstatePricePoints(ctx, params)
			},
		},
	}

	if stations != nil {
		entries = append(entries, entry{
			def: Definition{
				Name:        SearchStations,
				Description: "Search railway stations by name or code. Returns station group codes usable as the station parameter of search_transactions.",
				InputSchema: GenerateSchema[models.StationSearchParams](),
			},
			handler: func(ctx context.Context, args json.RawMessage) (any, error) {
				params, err := decode[models.StationSearchParams](args)
				if err != nil {
					return nil, err
				}
				return stations.Search(ctx, params.Query)
			},
		})
	}

	for _, e := range entries {
		if err := r.Register(e.def, e.handler); err != nil {
			return nil, err
		}
	}
	return r, nil
}
