package service

import (
	"context"
	"fmt"
	"strings"

	"reinfolib-api/internal/models"
)

// StationService contains the business logic for station lookups
type StationService struct {
	repo StationRepository
}

// StationRepository interface for dependency injection
type StationRepository interface {
	FindStationByName(ctx context.Context, name string) (*models.Station, error)
	FindStationByCode(ctx context.Context, code string) (*models.Station, error)
	SearchStations(ctx context.Context, query string) ([]models.Station, error)
	FindNearestStation(ctx context.Context, lat, lon float64) (*models.Station, error)
}

// NewStationService creates a new station service
func NewStationService(repo StationRepository) *StationService {
	return &StationService{repo: repo}
}

// LookupCode returns the station group code for a station name, preferring an
// exact name match over a partial one. It returns "" when nothing matches.
func (s *StationService) LookupCode(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: station name cannot be empty", ErrInvalidParams)
	}

	station, err := s.repo.FindStationByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("service: failed to find station: %w", err)
	}
	if station == nil {
		return "", nil
	}
	return station.Code, nil
}

// GetByCode returns the station with the given code, or nil if there is none.
func (s *StationService) GetByCode(ctx context.Context, code string) (*models.Station, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: station code cannot be empty", ErrInvalidParams)
	}

	station, err := s.repo.FindStationByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get station: %w", err)
	}
	return station, nil
}

// Search finds stations whose name or code contains query.
func (s *StationService) Search(ctx context.Context, query string) ([]models.Station, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", ErrInvalidParams)
	}

	stations, err := s.repo.SearchStations(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search stations: %w", err)
	}
	return stations, nil
}

// Nearest finds the station closest to the given coordinates
func (s *StationService) Nearest(ctx context.Context, lat, lon float64) (*models.Station, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: invalid latitude: %f", ErrInvalidParams, lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: invalid longitude: %f", ErrInvalidParams, lon)
	}

	station, err := s.repo.FindNearestStation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest station: %w", err)
	}
	return station, nil
}
