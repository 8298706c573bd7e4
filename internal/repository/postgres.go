package repository

import (
	"context"
	"errors"
	"fmt"

	"reinfolib-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stationColumns = `
			id,
			code,
			name,
			ST_Y(geom::geometry) as latitude,
			ST_X(geom::geometry) as longitude`

// searchLimit caps the rows returned by SearchStations
const searchLimit = 50

// Repository implements the station repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// FindStationByName returns the station whose name equals name, falling back
// to the first station whose name contains name or is contained in it.
func (r *Repository) FindStationByName(ctx context.Context, name string) (*models.Station, error) {
	exact := `SELECT` + stationColumns + `
		FROM stations
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	station, err := r.queryStation(ctx, exact, name)
	if err != nil || station != nil {
		return station, err
	}

	partial := `SELECT` + stationColumns + `
		FROM stations
		WHERE strpos(name, $1) > 0 OR strpos($1, name) > 0
		ORDER BY id
		LIMIT 1
	`
	return r.queryStation(ctx, partial, name)
}

// FindStationByCode returns the station with the given group code
func (r *Repository) FindStationByCode(ctx context.Context, code string) (*models.Station, error) {
	sql := `SELECT` + stationColumns + `
		FROM stations
		WHERE code = $1
		ORDER BY id
		LIMIT 1
	`
	return r.queryStation(ctx, sql, code)
}

// SearchStations returns stations whose name or code contains query
func (r *Repository) SearchStations(ctx context.Context, query string) ([]models.Station, error) {
	sql := `SELECT` + stationColumns + `
		FROM stations
		WHERE strpos(name, $1) > 0 OR strpos(code, $1) > 0
		ORDER BY id
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, query, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	stations := []models.Station{}
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Latitude, &s.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan station: %w", err)
		}
		stations = append(stations, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return stations, nil
}

// FindNearestStation performs a spatial query to find the nearest station to the given coordinates
func (r *Repository) FindNearestStation(ctx context.Context, lat, lon float64) (*models.Station, error) {
	sql := `SELECT` + stationColumns + `
		FROM stations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, 10000) -- Within 10km
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`
	return r.queryStation(ctx, sql, lat, lon)
}

// queryStation scans at most one station; no row yields (nil, nil).
func (r *Repository) queryStation(ctx context.Context, sql string, args ...any) (*models.Station, error) {
	var s models.Station
	err := r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Code, &s.Name, &s.Latitude, &s.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to query station: %w", err)
	}
	return &s, nil
}

// Schema creates the stations table and its indexes when missing
const Schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;
	CREATE TABLE IF NOT EXISTS stations (
		id BIGSERIAL PRIMARY KEY,
		code VARCHAR(16) NOT NULL,
		name VARCHAR(255) NOT NULL,
		operator VARCHAR(255) NOT NULL DEFAULT '',
		line VARCHAR(255) NOT NULL DEFAULT '',
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS stations_code_idx ON stations (code);
	CREATE INDEX IF NOT EXISTS stations_name_idx ON stations (name);
	CREATE INDEX IF NOT EXISTS stations_geom_idx ON stations USING GIST (geom);
`

// EnsureSchema applies Schema
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// StationRecord is one row of a station import.
type StationRecord struct {
	Code     string
	Name     string
	Operator string
	Line     string
	Lat      float64
	Lon      float64
}

// ImportStations bulk-loads records in a single transaction. With replace set,
// existing rows are removed first.
func (r *Repository) ImportStations(ctx context.Context, records []StationRecord, replace bool) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	if replace {
		if _, err := tx.Exec(ctx, `TRUNCATE stations RESTART IDENTITY`); err != nil {
			return 0, fmt.Errorf("repository: failed to clear stations: %w", err)
		}
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"stations"},
		[]string{"code", "name", "operator", "line", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", rec.Lon, rec.Lat) // PostGIS format: lon lat
			return []any{rec.Code, rec.Name, rec.Operator, rec.Line, geom}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy stations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit import: %w", err)
	}
	return n, nil
}

// CountStations returns the number of stored stations
func (r *Repository) CountStations(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM stations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("repository: failed to count stations: %w", err)
	}
	return count, nil
}
