package postal

import (
	"context"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/logger"
)

// Store destination of an import
type Store interface {
	StoreBatch(ctx context.Context, points []etshipping.PostalPoint) (int, error)
}

// Importer copies postal points from a file source into a Store
type Importer struct {
	store Store
	log   logger.Logger
}

// NewImporter creates an importer writing to store
func NewImporter(store Store, log logger.Logger) *Importer {
	return &Importer{store: store, log: log}
}

// ImportResult counts of an import run
type ImportResult struct {
	Read    int
	Written int
}

// Import reads every point of source ("csv" or "dbf") at path and stores it
func (i *Importer) Import(ctx context.Context, source, path string) (ImportResult, error) {
	var (
		points []etshipping.PostalPoint
		err    error
	)
	switch source {
	case SourceDBF:
		points, err = ReadDBF(ctx, path, i.log)
	default:
		points, err = ReadCSVFile(ctx, path, i.log)
	}
	if err != nil {
		return ImportResult{}, err
	}

	written, err := i.store.StoreBatch(ctx, points)
	res := ImportResult{Read: len(points), Written: written}
	if err != nil {
		return res, err
	}

	i.log.Infof(ctx, "postal import finished: source=%s, path=%s, read=%d, written=%d", source, path, res.Read, res.Written)
	return res, nil
}
