package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"reinfolib-api/internal/models"
	"reinfolib-api/internal/reinfolib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockReinfolibClient is a mock implementation of the ReinfolibClient interface
type MockReinfolibClient struct {
	mock.Mock
}

func (m *MockReinfolibClient) SearchTransactions(ctx context.Context, params models.TransactionSearchParams) ([]models.Transaction, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).([]models.Transaction)
	return result, args.Error(1)
}

func (m *MockReinfolibClient) GetMunicipalityList(ctx context.Context, prefectureCode string) ([]models.Municipality, error) {
	args := m.Called(ctx, prefectureCode)
	result, _ := args.Get(0).([]models.Municipality)
	return result, args.Error(1)
}

func (m *MockReinfolibClient) SearchAppraisals(ctx context.Context, params models.AppraisalSearchParams) ([]models.Appraisal, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).([]models.Appraisal)
	return result, args.Error(1)
}

func (m *MockReinfolibClient) SearchLandPricePoints(ctx context.Context, params models.LandPricePointSearchParams) ([]models.LandPricePoint, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).([]models.LandPricePoint)
	return result, args.Error(1)
}

func (m *MockReinfolibClient) SearchRealEstatePricePoints(ctx context.Context, params models.RealEstatePricePointSearchParams) ([]models.RealEstatePricePoint, error) {
	args := m.Called(ctx, params)
	result, _ := args.Get(0).([]models.RealEstatePricePoint)
	return result, args.Error(1)
}

// MockStationResolver is a mock implementation of the StationResolver interface
type MockStationResolver struct {
	mock.Mock
}

func (m *MockStationResolver) LookupCode(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
}

func float(v float64) *float64 { return &v }

func TestRealEstateService_SearchTransactions(t *testing.T) {
	tests := []struct {
		name          string
		params        models.TransactionSearchParams
		resolver      bool
		stationCode   string
		expectedQuery models.TransactionSearchParams
		expectError   error
	}{
		{
			name:          "passes params through",
			params:        models.TransactionSearchParams{Year: "2023", Area: "13", Quarter: "1"},
			expectedQuery: models.TransactionSearchParams{Year: "2023", Area: "13", Quarter: "1"},
		},
		{
			name:        "missing year",
			params:      models.TransactionSearchParams{Area: "13"},
			expectError: ErrInvalidParams,
		},
		{
			name:          "station name resolved",
			params:        models.TransactionSearchParams{Year: "2023", StationName: "渋谷"},
			resolver:      true,
			stationCode:   "001270",
			expectedQuery: models.TransactionSearchParams{Year: "2023", StationName: "渋谷", Station: "001270"},
		},
		{
			name:          "explicit station code wins",
			params:        models.TransactionSearchParams{Year: "2023", Station: "001337", StationName: "渋谷"},
			resolver:      true,
			expectedQuery: models.TransactionSearchParams{Year: "2023", Station: "001337", StationName: "渋谷"},
		},
		{
			name:        "unknown station name",
			params:      models.TransactionSearchParams{Year: "2023", StationName: "どこにもない"},
			resolver:    true,
			stationCode: "",
			expectError: ErrInvalidParams,
		},
		{
			name:        "station name without station database",
			params:      models.TransactionSearchParams{Year: "2023", StationName: "渋谷"},
			expectError: ErrInvalidParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockReinfolibClient)
			var resolver *MockStationResolver
			var svc *RealEstateService
			if tt.resolver {
				resolver = new(MockStationResolver)
				resolver.On("LookupCode", mock.Anything, tt.params.StationName).Return(tt.stationCode, nil).Maybe()
				svc = NewRealEstateService(client, resolver)
			} else {
				svc = NewRealEstateService(client, nil)
			}

			expected := []models.Transaction{{Type: "宅地(土地)"}}
			if tt.expectError == nil {
				client.On("SearchTransactions", mock.Anything, tt.expectedQuery).Return(expected, nil)
			}

			result, err := svc.SearchTransactions(context.Background(), tt.params)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				client.AssertNotCalled(t, "SearchTransactions", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, expected, result)
			client.AssertExpectations(t)
		})
	}
}

func TestRealEstateService_SearchTransactions_ResolverError(t *testing.T) {
	client := new(MockReinfolibClient)
	resolver := new(MockStationResolver)
	resolver.On("LookupCode", mock.Anything, "渋谷").Return("", assert.AnError)

	svc := NewRealEstateService(client, resolver)
	_, err := svc.SearchTransactions(context.Background(), models.TransactionSearchParams{Year: "2023", StationName: "渋谷"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, errors.Is(err, ErrInvalidParams))
}

func TestRealEstateService_GetMunicipalityList(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		expectedCode string
	}{
		{name: "explicit prefecture", code: "27", expectedCode: "27"},
		{name: "defaults to tokyo", code: "", expectedCode: "13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockReinfolibClient)
			svc := NewRealEstateService(client, nil)
			client.On("GetMunicipalityList", mock.Anything, tt.expectedCode).Return([]models.Municipality{}, nil)

			result, err := svc.GetMunicipalityList(context.Background(), tt.code)
			require.NoError(t, err)
			assert.Empty(t, result)
			client.AssertExpectations(t)
		})
	}
}

func TestRealEstateService_UpstreamErrorIsReturnedUnchanged(t *testing.T) {
	client := new(MockReinfolibClient)
	svc := NewRealEstateService(client, nil)
	apiErr := &reinfolib.APIError{Operation: reinfolib.OpMunicipalityList, StatusCode: 404, Message: "not found"}
	client.On("GetMunicipalityList", mock.Anything, "13").Return(nil, apiErr)

	_, err := svc.GetMunicipalityList(context.Background(), "13")
	require.Error(t, err)
	assert.Equal(t, "Municipality list request failed (404): not found", err.Error())
}

func TestRealEstateService_SearchAppraisals(t *testing.T) {
	tests := []struct {
		name        string
		params      models.AppraisalSearchParams
		expectError bool
	}{
		{name: "valid", params: models.AppraisalSearchParams{Year: "2024", Area: "13", Division: "05"}},
		{name: "missing year", params: models.AppraisalSearchParams{Area: "13", Division: "05"}, expectError: true},
		{name: "missing area", params: models.AppraisalSearchParams{Year: "2024", Division: "05"}, expectError: true},
		{name: "unknown division", params: models.AppraisalSearchParams{Year: "2024", Area: "13", Division: "99"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockReinfolibClient)
			svc := NewRealEstateService(client, nil)
			if !tt.expectError {
				client.On("SearchAppraisals", mock.Anything, tt.params).Return([]models.Appraisal{{PrefectureCode: "13"}}, nil)
			}

			result, err := svc.SearchAppraisals(context.Background(), tt.params)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidParams)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Len(t, result, 1)
			client.AssertExpectations(t)
		})
	}
}

func TestRealEstateService_TileValidation(t *testing.T) {
	tests := []struct {
		name        string
		z, x, y     int
		from, to    string
		expectError bool
	}{
		{name: "valid", z: 13, x: 7276, y: 3225, from: "20231", to: "20234"},
		{name: "zoom too low", z: 10, x: 1, y: 1, from: "20231", to: "20234", expectError: true},
		{name: "zoom too high", z: 16, x: 1, y: 1, from: "20231", to: "20234", expectError: true},
		{name: "negative x", z: 13, x: -1, y: 1, from: "20231", to: "20234", expectError: true},
		{name: "bad period", z: 13, x: 1, y: 1, from: "2023", to: "20234", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockReinfolibClient)
			svc := NewRealEstateService(client, nil)
			params := models.RealEstatePricePointSearchParams{Z: tt.z, X: tt.x, Y: tt.y, From: tt.from, To: tt.to}
			client.On("SearchRealEstatePricePoints", mock.Anything, params).Return([]models.RealEstatePricePoint{}, nil).Maybe()

			_, err := svc.SearchRealEstatePricePoints(context.Background(), params)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidParams)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	client := new(MockReinfolibClient)
	svc := NewRealEstateService(client, nil)
	_, err := svc.SearchLandPricePoints(context.Background(), models.LandPricePointSearchParams{Z: 9})
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestRealEstateService_SearchProperties_Defaults(t *testing.T) {
	client := new(MockReinfolibClient)
	svc := NewRealEstateService(client, nil)
	svc.now = fixedClock(2026)

	client.On("SearchTransactions", mock.Anything, models.TransactionSearchParams{Year: "2026", Area: "13"}).
		Return([]models.Transaction{
			{
				Type:           "中古マンション等",
				Municipality:   "港区",
				DistrictName:   "赤坂",
				UnitPrice:      98000000,
				TotalFloorArea: 65,
				BuildingYear:   "2005年",
				Use:            "住宅",
				Structure:      "ＲＣ",
			},
			{Municipality: "港区", DistrictName: "六本木", BuildingYear: "戦前"},
			{Municipality: "港区", DistrictName: "芝", BuildingYear: ""},
		}, nil)

	result, err := svc.SearchProperties(context.Background(), models.SearchParams{})
	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.Equal(t, models.Property{
		ID:           "港区-赤坂",
		Name:         "港区 赤坂",
		Address:      "港区 赤坂",
		Price:        98000000,
		PropertyType: "中古マンション等",
		Area:         65,
		BuildingAge:  21,
		Description:  "住宅 - ＲＣ",
	}, result[0])
	assert.Equal(t, 0, result[1].BuildingAge)
	assert.Equal(t, 0, result[2].BuildingAge)
	assert.Equal(t, " - ", result[2].Description)
	client.AssertExpectations(t)
}

func TestRealEstateService_SearchProperties_Filters(t *testing.T) {
	transactions := []models.Transaction{
		{Type: "宅地(土地)", DistrictName: "a", UnitPrice: 10000000, TotalFloorArea: 100},
		{Type: "中古マンション等", DistrictName: "b", UnitPrice: 50000000, TotalFloorArea: 60},
		{Type: "中古マンション等", DistrictName: "c", UnitPrice: 90000000, TotalFloorArea: 80},
	}

	tests := []struct {
		name     string
		params   models.SearchParams
		expected []string
	}{
		{name: "no filters", params: models.SearchParams{Year: "2024", Prefecture: "14"}, expected: []string{"-a", "-b", "-c"}},
		{name: "price range", params: models.SearchParams{Year: "2024", Prefecture: "14", MinPrice: float(20000000), MaxPrice: float(60000000)}, expected: []string{"-b"}},
		{name: "area range", params: models.SearchParams{Year: "2024", Prefecture: "14", MinArea: float(70)}, expected: []string{"-a", "-c"}},
		{name: "max area", params: models.SearchParams{Year: "2024", Prefecture: "14", MaxArea: float(60)}, expected: []string{"-b"}},
		{name: "property type", params: models.SearchParams{Year: "2024", Prefecture: "14", PropertyType: "宅地(土地)"}, expected: []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockReinfolibClient)
			svc := NewRealEstateService(client, nil)
			client.On("SearchTransactions", mock.Anything, models.TransactionSearchParams{Year: "2024", Area: "14"}).Return(transactions, nil)

			result, err := svc.SearchProperties(context.Background(), tt.params)
			require.NoError(t, err)

			ids := make([]string, 0, len(result))
			for _, p := range result {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestRealEstateService_SearchProperties_Error(t *testing.T) {
	client := new(MockReinfolibClient)
	svc := NewRealEstateService(client, nil)
	svc.now = fixedClock(2025)
	apiErr := &reinfolib.APIError{Operation: reinfolib.OpTransactionSearch, StatusCode: 500, Message: "Internal Server Error"}
	client.On("SearchTransactions", mock.Anything, models.TransactionSearchParams{Year: "2025", Area: "13", City: "13103"}).Return(nil, apiErr)

	_, err := svc.SearchProperties(context.Background(), models.SearchParams{City: "13103"})
	require.Error(t, err)
	assert.Equal(t, "Property search failed: Transaction search failed (500): Internal Server Error", err.Error())

	var target *reinfolib.APIError
	assert.ErrorAs(t, err, &target)
}

func TestBuildingAge(t *testing.T) {
	tests := []struct {
		buildingYear string
		expected     int
	}{
		{buildingYear: "1998", expected: 28},
		{buildingYear: "1998年", expected: 28},
		{buildingYear: "", expected: 0},
		{buildingYear: "戦前", expected: 0},
		{buildingYear: "98", expected: 0},
		{buildingYear: "平成10年", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.buildingYear, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildingAge(tt.buildingYear, 2026))
		})
	}
}
