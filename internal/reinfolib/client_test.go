package reinfolib

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"reinfolib-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTransport is a mock implementation of the Transport interface
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Get(ctx context.Context, path string, header http.Header, query url.Values) (int, []byte, error) {
	args := m.Called(ctx, path, header, query)
	body, _ := args.Get(1).([]byte)
	return args.Int(0), body, args.Error(2)
}

func expectHeaders(h http.Header) bool {
	return h.Get("Ocp-Apim-Subscription-Key") == "test-key" &&
		h.Get("Accept") == "application/json" &&
		h.Get("User-Agent") == DefaultUserAgent
}

func TestClient_SearchTransactions_OmitsEmptyParams(t *testing.T) {
	transport := new(MockTransport)
	client := NewClient(transport, "test-key", "")

	expectedQuery := url.Values{"year": {"2023"}, "area": {"13"}}
	transport.On("Get", mock.Anything, PathTransactions, mock.MatchedBy(expectHeaders), expectedQuery).
		Return(http.StatusOK, []byte(`{"data":[{"Type":"宅地(土地)","TradePrice":"5000"}]}`), nil)

	result, err := client.SearchTransactions(context.Background(), models.TransactionSearchParams{Year: "2023", Area: "13", StationName: "渋谷"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 5000.0, result[0].UnitPrice)
	transport.AssertExpectations(t)
}

func TestClient_GetMunicipalityList(t *testing.T) {
	transport := new(MockTransport)
	client := NewClient(transport, "test-key", "")

	transport.On("Get", mock.Anything, PathMunicipalities, mock.Anything, url.Values{"area": {"14"}}).
		Return(http.StatusOK, []byte(`{"status":"OK","data":[{"id":"14100","name":"横浜市"}]}`), nil)

	result, err := client.GetMunicipalityList(context.Background(), "14")
	require.NoError(t, err)
	assert.Equal(t, []models.Municipality{{
		PrefectureCode:   "14",
		PrefectureName:   "神奈川県",
		MunicipalityCode: "14100",
		MunicipalityName: "横浜市",
	}}, result)
	transport.AssertExpectations(t)
}

func TestClient_TileEndpointsDefaultResponseFormat(t *testing.T) {
	transport := new(MockTransport)
	client := NewClient(transport, "test-key", "")

	transport.On("Get", mock.Anything, PathLandPricePoints, mock.Anything,
		url.Values{"response_format": {"geojson"}, "z": {"13"}, "x": {"7276"}, "y": {"3225"}, "year": {"2024"}}).
		Return(http.StatusOK, []byte(`{"type":"FeatureCollection","features":[]}`), nil)
	transport.On("Get", mock.Anything, PathRealEstatePricePoints, mock.Anything,
		url.Values{"response_format": {"pbf"}, "z": {"14"}, "x": {"0"}, "y": {"0"}, "from": {"20231"}, "to": {"20234"}, "landTypeCode": {"01"}}).
		Return(http.StatusOK, []byte(`{"type":"FeatureCollection","features":[]}`), nil)

	points, err := client.SearchLandPricePoints(context.Background(), models.LandPricePointSearchParams{Z: 13, X: 7276, Y: 3225, Year: "2024"})
	require.NoError(t, err)
	assert.Empty(t, points)

	prices, err := client.SearchRealEstatePricePoints(context.Background(), models.RealEstatePricePointSearchParams{
		ResponseFormat: "pbf", Z: 14, From: "20231", To: "20234", LandTypeCode: "01",
	})
	require.NoError(t, err)
	assert.Empty(t, prices)

	transport.AssertExpectations(t)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        []byte
		transErr    error
		expectedMsg string
		statusCode  int
	}{
		{
			name:        "upstream message",
			status:      http.StatusNotFound,
			body:        []byte(`{"message":"not found"}`),
			expectedMsg: "Municipality list request failed (404): not found",
			statusCode:  http.StatusNotFound,
		},
		{
			name:        "status text fallback",
			status:      http.StatusUnauthorized,
			body:        []byte(`<html>denied</html>`),
			expectedMsg: "Municipality list request failed (401): Unauthorized",
			statusCode:  http.StatusUnauthorized,
		},
		{
			name:        "generic fallback",
			status:      599,
			body:        nil,
			expectedMsg: "Municipality list request failed (599): Unknown API error",
			statusCode:  599,
		},
		{
			name:        "transport failure",
			transErr:    errors.New("dial tcp: connection refused"),
			expectedMsg: "Municipality list request failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := new(MockTransport)
			client := NewClient(transport, "test-key", "")
			transport.On("Get", mock.Anything, PathMunicipalities, mock.Anything, mock.Anything).
				Return(tt.status, tt.body, tt.transErr)

			result, err := client.GetMunicipalityList(context.Background(), "13")
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.expectedMsg, err.Error())

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, OpMunicipalityList, apiErr.Operation)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			if tt.transErr != nil {
				assert.ErrorIs(t, err, tt.transErr)
			}
		})
	}
}

func TestClient_NonJSONSuccessBodyYieldsEmptyList(t *testing.T) {
	transport := new(MockTransport)
	client := NewClient(transport, "test-key", "")
	transport.On("Get", mock.Anything, PathAppraisals, mock.Anything, mock.Anything).
		Return(http.StatusOK, []byte(`<!doctype html>`), nil)

	result, err := client.SearchAppraisals(context.Background(), models.AppraisalSearchParams{Year: "2024", Area: "13", Division: "00"})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestHTTPTransport_Get(t *testing.T) {
	var gotPath, gotQuery, gotKey, gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Query().Get("area") == "00" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","data":[{"id":"13101","name":"千代田区"}]}`))
	}))
	defer server.Close()

	client := NewClient(NewHTTPTransport(server.URL+"/ex-api/external/", time.Second), "secret", "custom-agent/2.0")

	result, err := client.GetMunicipalityList(context.Background(), "13")
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "千代田区", result[0].MunicipalityName)
	assert.Equal(t, "/ex-api/external/XIT002", gotPath)
	assert.Equal(t, "area=13", gotQuery)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "custom-agent/2.0", gotAgent)

	_, err = client.GetMunicipalityList(context.Background(), "00")
	require.Error(t, err)
	assert.Contains(t, err.Error(), OpMunicipalityList)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "not found")
}

func TestHTTPTransport_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(NewHTTPTransport(baseURL, time.Second), "secret", "")
	_, err := client.SearchTransactions(context.Background(), models.TransactionSearchParams{Year: "2023"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Transaction search failed: ")
}
