package postal

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/app/config"
	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/logger"
)

// Source names accepted in postal.source
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceDBF      = "dbf"
	SourcePostgres = "postgres"
)

//go:embed data/zipcodes.csv
var embeddedCSV []byte

// Embedded points compiled into the binary
func Embedded(ctx context.Context, log logger.Logger) ([]etshipping.PostalPoint, error) {
	return ReadCSV(ctx, bytes.NewReader(embeddedCSV), log)
}

// ReadPoints reads raw points from the configured source
func ReadPoints(ctx context.Context, cfg config.PostalConfig, log logger.Logger) ([]etshipping.PostalPoint, error) {
	switch cfg.Source {
	case "", SourceEmbedded:
		return Embedded(ctx, log)
	case SourceCSV:
		return ReadCSVFile(ctx, cfg.Path, log)
	case SourceDBF:
		return ReadDBF(ctx, cfg.Path, log)
	case SourcePostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connect postgres failed: %w", err)
		}
		defer pool.Close()

		repo, err := NewRepository(ctx, pool)
		if err != nil {
			return nil, err
		}
		return repo.LoadAll(ctx)
	default:
		return nil, fmt.Errorf("unknown postal source %q", cfg.Source)
	}
}

// Load builds the immutable postal table from the configured source
func Load(ctx context.Context, cfg config.PostalConfig, log logger.Logger) (*etshipping.PostalTable, error) {
	points, err := ReadPoints(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("postal source %s returned no postal codes", cfg.Source)
	}

	table, err := etshipping.NewPostalTable(points)
	if err != nil {
		return nil, fmt.Errorf("build postal table failed: %w", err)
	}
	log.Infof(ctx, "postal table loaded: source=%s, codes=%d", cfg.Source, table.Len())
	return table, nil
}
