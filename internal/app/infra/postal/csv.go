package postal

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"storefront/internal/app/domains/entity/etshipping"
	"storefront/internal/app/pkg/logger"
)

// header aliases, the first matching column wins
var (
	zipColumns   = []string{"zip", "zipcode", "zip_code", "geoid", "zcta5ce20", "zcta5ce10"}
	latColumns   = []string{"latitude", "lat", "intptlat", "intptlat20", "intptlat10"}
	lonColumns   = []string{"longitude", "lon", "lng", "intptlong", "intptlon20", "intptlon10"}
	cityColumns  = []string{"city"}
	stateColumns = []string{"state", "usps"}
)

type csvLayout struct {
	zip, lat, lon, city, state int
}

func detectLayout(header []string) (csvLayout, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	find := func(names []string) int {
		for _, n := range names {
			if i, ok := index[n]; ok {
				return i
			}
		}
		return -1
	}

	l := csvLayout{
		zip:   find(zipColumns),
		lat:   find(latColumns),
		lon:   find(lonColumns),
		city:  find(cityColumns),
		state: find(stateColumns),
	}
	if l.zip < 0 || l.lat < 0 || l.lon < 0 {
		return l, fmt.Errorf("csv header %v lacks zip/latitude/longitude columns", header)
	}
	return l, nil
}

// ReadCSV parses postal points from r. The first row is the header.
// Rows that cannot be parsed are logged and skipped.
func ReadCSV(ctx context.Context, r io.Reader, log logger.Logger) ([]etshipping.PostalPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header failed: %w", err)
	}
	layout, err := detectLayout(header)
	if err != nil {
		return nil, err
	}

	var points []etshipping.PostalPoint
	line := 1
	for {
		fields, err := cr.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warnf(ctx, "skip csv line %d: %v", line, err)
			continue
		}

		p, err := layout.point(fields)
		if err != nil {
			log.Warnf(ctx, "skip csv line %d: %v", line, err)
			continue
		}
		points = append(points, p)
	}

	return points, nil
}

// ReadCSVFile parses the csv file at path
func ReadCSVFile(ctx context.Context, path string, log logger.Logger) ([]etshipping.PostalPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open postal csv failed: %w", err)
	}
	defer f.Close()
	return ReadCSV(ctx, f, log)
}

func (l csvLayout) point(fields []string) (etshipping.PostalPoint, error) {
	get := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	lat, err := strconv.ParseFloat(get(l.lat), 64)
	if err != nil {
		return etshipping.PostalPoint{}, fmt.Errorf("bad latitude %q", get(l.lat))
	}
	lon, err := strconv.ParseFloat(get(l.lon), 64)
	if err != nil {
		return etshipping.PostalPoint{}, fmt.Errorf("bad longitude %q", get(l.lon))
	}

	p := etshipping.PostalPoint{
		Code:      padZip(get(l.zip)),
		Latitude:  lat,
		Longitude: lon,
		City:      get(l.city),
		State:     strings.ToUpper(get(l.state)),
	}
	return p, p.Validate()
}

// padZip restores leading zeros stripped by spreadsheet exports
func padZip(code string) string {
	code = etshipping.NormalizePostalCode(code)
	if code != "" && len(code) < 5 {
		if _, err := strconv.Atoi(code); err == nil {
			code = strings.Repeat("0", 5-len(code)) + code
		}
	}
	return code
}
