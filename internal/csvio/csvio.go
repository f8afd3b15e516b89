package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"divarlens/server/internal/models"
)

// Column order of the exported CSV. Decoding matches headers
// case-insensitively and tolerates reordered or missing columns.
var header = []string{
	"scraped_date", "district", "size", "total_price", "price_per_sqm",
	"latitude", "longitude", "title", "token", "age",
}

// Dates are written as RFC 3339; decoding also accepts the bare date forms
// older exports used.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Encode renders records as a CSV byte stream. Absent optional fields
// become empty cells so a round trip preserves them as absent.
func Encode(records []models.ListingRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ScrapedAt.Format(time.RFC3339),
			r.District,
			formatInt(r.Size),
			formatInt64(r.TotalPrice),
			formatInt64(r.PricePerSqm),
			formatFloat(r.Latitude),
			formatFloat(r.Longitude),
			r.Title,
			r.Token,
			formatInt(r.Age),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a CSV record stream. Structural problems (unknown date
// format, malformed numbers) are errors reported with their row number;
// empty optional cells decode as absent values, never as zero.
func Decode(r io.Reader) ([]models.ListingRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headerRow, err := reader.Read()
	if err == io.EOF {
		return []models.ListingRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(headerRow))
	for i, name := range headerRow {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["scraped_date"]; !ok {
		return nil, fmt.Errorf("missing required column scraped_date")
	}
	if _, ok := columns["district"]; !ok {
		return nil, fmt.Errorf("missing required column district")
	}

	var records []models.ListingRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", line, err)
		}

		record, err := decodeRow(row, columns)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// DecodeFile decodes the CSV dataset at path.
func DecodeFile(path string) ([]models.ListingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

func decodeRow(row []string, columns map[string]int) (models.ListingRecord, error) {
	var record models.ListingRecord

	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	scraped, err := parseDate(cell("scraped_date"))
	if err != nil {
		return record, err
	}
	record.ScrapedAt = scraped
	record.District = cell("district")
	record.Title = cell("title")
	record.Token = cell("token")

	if record.Size, err = parseOptionalInt(cell("size"), "size"); err != nil {
		return record, err
	}
	if record.TotalPrice, err = parseOptionalInt64(cell("total_price"), "total_price"); err != nil {
		return record, err
	}
	if record.PricePerSqm, err = parseOptionalInt64(cell("price_per_sqm"), "price_per_sqm"); err != nil {
		return record, err
	}
	if record.Latitude, err = parseOptionalFloat(cell("latitude"), "latitude"); err != nil {
		return record, err
	}
	if record.Longitude, err = parseOptionalFloat(cell("longitude"), "longitude"); err != nil {
		return record, err
	}
	if record.Age, err = parseOptionalInt(cell("age"), "age"); err != nil {
		return record, err
	}

	return record, nil
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing scraped_date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized scraped_date %q", value)
}

func parseOptionalInt(value, name string) (*int, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	return &n, nil
}

func parseOptionalInt64(value, name string) (*int64, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	return &n, nil
}

func parseOptionalFloat(value, name string) (*float64, error) {
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	return &f, nil
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatInt64(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
