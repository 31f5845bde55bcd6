package postal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Valentin-Kaiser/go-dbase/dbase"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/logger"
)

// ReadDBF reads postal points from a Census ZCTA attribute table (.dbf).
// Column names follow the 2010 and 2020 releases; CITY/STATE are optional.
func ReadDBF(ctx context.Context, path string, log logger.Logger) ([]etshipping.PostalPoint, error) {
	table, err := dbase.OpenTable(&dbase.Config{
		Filename:   path,
		TrimSpaces: true,
		// census files are plain dBase III
		Untested: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open dbf %s failed: %w", path, err)
	}
	defer table.Close()

	var points []etshipping.PostalPoint
	record := 0
	for !table.EOF() {
		row, err := table.Next()
		record++
		if err != nil {
			log.Warnf(ctx, "skip dbf record %d: %v", record, err)
			continue
		}
		if row.Deleted {
			continue
		}

		values, err := row.ToMap()
		if err != nil {
			log.Warnf(ctx, "skip dbf record %d: %v", record, err)
			continue
		}

		p, err := dbfPoint(values)
		if err != nil {
			log.Warnf(ctx, "skip dbf record %d: %v", record, err)
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

func dbfPoint(values map[string]interface{}) (etshipping.PostalPoint, error) {
	pick := func(names ...string) interface{} {
		for _, n := range names {
			if v, ok := values[n]; ok && v != nil {
				return v
			}
		}
		return nil
	}

	zip := toString(pick("ZCTA5CE20", "ZCTA5CE10", "GEOID20", "GEOID10", "ZIP"))
	lat, ok := toF64(pick("INTPTLAT20", "INTPTLAT10", "LATITUDE"))
	if !ok {
		return etshipping.PostalPoint{}, fmt.Errorf("zcta %s: missing latitude", zip)
	}
	lon, ok := toF64(pick("INTPTLON20", "INTPTLON10", "LONGITUDE"))
	if !ok {
		return etshipping.PostalPoint{}, fmt.Errorf("zcta %s: missing longitude", zip)
	}

	p := etshipping.PostalPoint{
		Code:      padZip(zip),
		Latitude:  lat,
		Longitude: lon,
		City:      toString(pick("CITY", "PO_NAME")),
		State:     strings.ToUpper(toString(pick("STATE", "STUSPS"))),
	}
	return p, p.Validate()
}

// toF64 accepts the numeric and character encodings census tables use ("+40.7146")
func toF64(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toString(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case []byte:
		return strings.TrimSpace(string(x))
	default:
		return strings.TrimSpace(fmt.Sprint(x))
	}
}
