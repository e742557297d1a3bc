package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/network"
)

// Canonical sheet fields in match priority order. A header claims the first
// unclaimed field it overlaps with.
const (
	fieldCompany   = "company"
	fieldRole      = "role"
	fieldLocation  = "location"
	fieldApplyLink = "apply link"
	fieldAge       = "age"
	fieldJobType   = "type"
)

var canonicalFields = []string{
	fieldCompany,
	fieldRole,
	fieldLocation,
	fieldApplyLink,
	fieldAge,
	fieldJobType,
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Sheet reads listings from a published spreadsheet CSV export.
type Sheet struct {
	name   string
	url    string
	client *network.Client
}

func NewSheet(name string, url string, client *network.Client) *Sheet {
	return &Sheet{name: name, url: url, client: client}
}

func (s *Sheet) Name() string {
	return s.name
}

func (s *Sheet) Fetch(ctx context.Context) ([]models.Listing, error) {
	body, err := s.client.FetchText(ctx, s.url)
	if err != nil {
		return nil, err
	}
	return parseSheetCSV(s.name, body)
}

func parseSheetCSV(sourceName string, body string) ([]models.Listing, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix([]byte(body), utf8BOM)))
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := mapColumns(header)
	if _, ok := columns[fieldCompany]; !ok {
		return nil, fmt.Errorf("csv header has no recognizable company column: %q", header)
	}

	var listings []models.Listing
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		l := models.Listing{
			Company:   cellValue(row, columns, fieldCompany),
			Role:      cellValue(row, columns, fieldRole),
			Location:  cellValue(row, columns, fieldLocation),
			ApplyLink: cellValue(row, columns, fieldApplyLink),
			Age:       cellValue(row, columns, fieldAge),
			JobType:   cellValue(row, columns, fieldJobType),
			Source:    sourceName,
		}
		if l.Company == "" || l.Role == "" {
			continue
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// mapColumns assigns headers to canonical fields by case-insensitive
// substring overlap in either direction. Headers are walked in order and
// each canonical field is claimed at most once, so a later column that
// overlaps an already claimed field falls through to the next field it
// matches.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int, len(canonicalFields))
	for idx, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		for _, field := range canonicalFields {
			if _, claimed := columns[field]; claimed {
				continue
			}
			if strings.Contains(name, field) || strings.Contains(field, name) {
				columns[field] = idx
				break
			}
		}
	}
	return columns
}

func cellValue(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
