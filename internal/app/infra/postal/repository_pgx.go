package postal

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/errorx"
)

const (
	createZipTable = `CREATE TABLE IF NOT EXISTS zipcodes(
		zip varchar(16) primary key,
		location geometry(Point, 4326),
		city varchar(128) NOT NULL DEFAULT '',
		state varchar(8) NOT NULL DEFAULT ''
	);`

	createLocationIndex = `CREATE INDEX IF NOT EXISTS idx_zipcodes_location ON zipcodes USING gist(location);`

	upsertZip = `INSERT INTO zipcodes(zip, location, city, state)
		VALUES($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5)
		ON CONFLICT (zip) DO UPDATE SET location = EXCLUDED.location, city = EXCLUDED.city, state = EXCLUDED.state;`

	selectZip = `SELECT zip, ST_Y(location), ST_X(location), city, state FROM zipcodes WHERE zip = $1;`

	selectAllZips = `SELECT zip, ST_Y(location), ST_X(location), city, state FROM zipcodes;`
)

// batchSize rows per round trip when importing
const batchSize = 500

// Repository PostGIS backed postal store
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository ensures the zipcodes table exists. PostGIS must already be
// enabled in the database.
func NewRepository(ctx context.Context, pool *pgxpool.Pool) (*Repository, error) {
	if _, err := pool.Exec(ctx, createZipTable); err != nil {
		return nil, fmt.Errorf("create zipcodes table failed: %w", err)
	}
	if _, err := pool.Exec(ctx, createLocationIndex); err != nil {
		return nil, fmt.Errorf("create zipcodes index failed: %w", err)
	}
	return &Repository{pool: pool}, nil
}

// Store upserts one point
func (r *Repository) Store(ctx context.Context, p etshipping.PostalPoint) error {
	_, err := r.pool.Exec(ctx, upsertZip, p.Code, p.Longitude, p.Latitude, p.City, p.State)
	return err
}

// StoreBatch upserts points in batches and returns how many were written
func (r *Repository) StoreBatch(ctx context.Context, points []etshipping.PostalPoint) (int, error) {
	written := 0
	for start := 0; start < len(points); start += batchSize {
		end := min(start+batchSize, len(points))

		b := &pgx.Batch{}
		for _, p := range points[start:end] {
			b.Queue(upsertZip, p.Code, p.Longitude, p.Latitude, p.City, p.State)
		}

		br := r.pool.SendBatch(ctx, b)
		for i := start; i < end; i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return written, fmt.Errorf("store zip %s failed: %w", points[i].Code, err)
			}
			written++
		}
		if err := br.Close(); err != nil {
			return written, err
		}
	}
	return written, nil
}

// FindZipCode returns *errorx.LookupError when the code is absent
func (r *Repository) FindZipCode(ctx context.Context, code string) (etshipping.PostalPoint, error) {
	var p etshipping.PostalPoint
	err := r.pool.QueryRow(ctx, selectZip, code).Scan(&p.Code, &p.Latitude, &p.Longitude, &p.City, &p.State)
	if errors.Is(err, pgx.ErrNoRows) {
		return p, &errorx.LookupError{PostalCode: code}
	}
	return p, err
}

// LoadAll reads the whole table
func (r *Repository) LoadAll(ctx context.Context) ([]etshipping.PostalPoint, error) {
	rows, err := r.pool.Query(ctx, selectAllZips)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []etshipping.PostalPoint
	for rows.Next() {
		var p etshipping.PostalPoint
		if err := rows.Scan(&p.Code, &p.Latitude, &p.Longitude, &p.City, &p.State); err != nil {
			return nil, fmt.Errorf("scan zipcode failed: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
