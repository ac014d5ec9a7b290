package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"localmarket-api/internal/config"
	"localmarket-api/internal/hexgrid"
	"localmarket-api/internal/models"
	"localmarket-api/internal/repository"
	"localmarket-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// defaultNeighborhoods are seeded when no file is given.
var defaultNeighborhoods = []models.NeighborhoodInput{
	{Name: "Gulshan", Latitude: 24.9121, Longitude: 67.0707},
	{Name: "DHA", Latitude: 24.8125, Longitude: 67.0336},
	{Name: "PECHS", Latitude: 24.8828, Longitude: 67.0566},
	{Name: "Clifton", Latitude: 24.8086, Longitude: 67.0270},
	{Name: "Korangi", Latitude: 24.8700, Longitude: 67.1450},
}

func main() {
	file := flag.String("file", "", "Path to a CSV file of name,latitude,longitude (defaults to the built-in list)")
	flag.Parse()

	inputs := defaultNeighborhoods
	if *file != "" {
		log.Info().Str("file", *file).Msg("reading neighborhoods")

		records, err := parseCSV(*file)
		if err != nil {
			log.Fatal().Err(err).Msg("error parsing CSV")
		}
		inputs = records
	}
	log.Info().Int("count", len(inputs)).Msg("parsed neighborhoods")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}

	ctx := context.Background()

	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("error creating tables")
	}

	indexer, err := hexgrid.NewIndexer(cfg.CellResolution)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cell resolution")
	}

	stored, err := service.NewNeighborhoodService(repo, indexer).Seed(ctx, inputs)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding neighborhoods")
	}
	for _, n := range stored {
		log.Debug().Str("name", n.Name).Str("cell_id", n.CellID).Msg("seeded")
	}
	for _, n := range staleCells(stored, indexer.Resolution()) {
		log.Warn().
			Str("name", n.Name).
			Str("cell_id", n.CellID).
			Int("resolution", indexer.Resolution()).
			Msg("stored cell is not at the configured resolution; nearby search will not match it")
	}

	if err := verifySeed(ctx, repo, len(inputs)); err != nil {
		log.Fatal().Err(err).Msg("error verifying seed")
	}

	log.Info().Int("count", len(stored)).Int("resolution", indexer.Resolution()).Msg("successfully seeded neighborhoods")
}

// parseCSV reads name,latitude,longitude rows. The first row is a header.
func parseCSV(filePath string) ([]models.NeighborhoodInput, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readNeighborhoods(file)
}

func readNeighborhoods(r io.Reader) ([]models.NeighborhoodInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []models.NeighborhoodInput
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude for %s: %s", record[0], record[1])
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude for %s: %s", record[0], record[2])
		}

		records = append(records, models.NeighborhoodInput{
			Name:      strings.TrimSpace(record[0]),
			Latitude:  lat,
			Longitude: lng,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no neighborhoods in file")
	}
	return records, nil
}

// staleCells returns the stored neighborhoods whose cell was indexed at a
// resolution other than resolution. Existing rows are never re-indexed, so
// these appear after CELL_RESOLUTION changes.
func staleCells(stored []models.Neighborhood, resolution int) []models.Neighborhood {
	var stale []models.Neighborhood
	for _, n := range stored {
		res, err := hexgrid.Resolution(hexgrid.CellID(n.CellID))
		if err != nil || res != resolution {
			stale = append(stale, n)
		}
	}
	return stale
}

// neighborhoodCounter is the repository method verifySeed needs.
type neighborhoodCounter interface {
	CountNeighborhoods(ctx context.Context) (int, error)
}

func verifySeed(ctx context.Context, repo neighborhoodCounter, expected int) error {
	count, err := repo.CountNeighborhoods(ctx)
	if err != nil {
		return fmt.Errorf("failed to count neighborhoods: %w", err)
	}
	if count < expected {
		return fmt.Errorf("neighborhood count mismatch: expected at least %d, got %d", expected, count)
	}
	return nil
}
