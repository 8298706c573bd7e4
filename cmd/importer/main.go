package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"reinfolib-api/internal/config"
	"reinfolib-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// stationColumns is the expected CSV layout after the header row.
var stationColumns = []string{"code", "name", "operator", "line", "lat", "lon"}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "importer",
		Short:         "Load railway stations into the station database",
		Long:          "Reads a CSV of stations (" + strings.Join(stationColumns, ",") + ") with a header row and bulk-loads it into PostgreSQL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runImport,
	}
	root.Flags().StringP("file", "f", "", "path to the CSV file to import")
	root.Flags().String("config", "configs", "directory containing app.env")
	root.Flags().Bool("replace", false, "remove existing stations before importing")
	_ = root.MarkFlagRequired("file")
	return root
}

func runImport(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	configDir, _ := cmd.Flags().GetString("config")
	replace, _ := cmd.Flags().GetBool("replace")

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return report(err, "cannot load config")
	}
	config.SetupLogging(cfg.LogLevel, os.Stderr, true)

	if cfg.DBSource == "" {
		return report(errors.New("DB_SOURCE is not set"), "cannot import")
	}

	log.Info().Str("file", file).Msg("starting import")

	f, err := os.Open(file)
	if err != nil {
		return report(err, "cannot open file")
	}
	defer f.Close()

	records, err := parseStations(f)
	if err != nil {
		return report(err, "cannot parse CSV")
	}
	log.Info().Int("records", len(records)).Msg("parsed stations")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return report(err, "cannot connect to db")
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return report(err, "cannot create schema")
	}

	n, err := repo.ImportStations(ctx, records, replace)
	if err != nil {
		return report(err, "cannot insert stations")
	}

	total, err := repo.CountStations(ctx)
	if err != nil {
		return report(err, "cannot verify import")
	}

	log.Info().Int64("imported", n).Int64("total", total).Msg("import finished")
	return nil
}

func report(err error, msg string) error {
	log.Error().Err(err).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}

// parseStations reads station rows, skipping the header. Blank lines are ignored.
func parseStations(r io.Reader) ([]repository.StationRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	records := []repository.StationRecord{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		if len(row) < len(stationColumns) {
			return nil, fmt.Errorf("line %d: invalid record length %d, expected %d columns", line, len(row), len(stationColumns))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, row[4])
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		if err != nil || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, row[5])
		}

		code := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if code == "" || name == "" {
			return nil, fmt.Errorf("line %d: code and name are required", line)
		}

		records = append(records, repository.StationRecord{
			Code:     code,
			Name:     name,
			Operator: strings.TrimSpace(row[2]),
			Line:     strings.TrimSpace(row[3]),
			Lat:      lat,
			Lon:      lon,
		})
	}

	return records, nil
}
