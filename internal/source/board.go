package source

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/network"
)

// Rows are scanned textually rather than through a full HTML parse: board
// documents embed bare <tr> fragments in markdown, and an HTML tree parser
// relocates or drops table elements that appear outside a <table>. Cell
// contents are small inline fragments and go through goquery (common.go).
var (
	rowPattern  = regexp.MustCompile(`(?s)<tr[^>]*>(.*?)</tr>`)
	cellPattern = regexp.MustCompile(`(?s)<td[^>]*>(.*?)</td>`)
)

const (
	closedGlyph       = "🔒"
	continuationGlyph = "↳"
)

// Board reads listings from a markdown document with an embedded HTML table,
// such as a curated jobs README.
type Board struct {
	name    string
	url     string
	section string
	ageCell bool
	client  *network.Client
}

func NewBoard(name string, url string, section string, ageCell bool, client *network.Client) *Board {
	return &Board{name: name, url: url, section: section, ageCell: ageCell, client: client}
}

func (b *Board) Name() string {
	return b.name
}

func (b *Board) Fetch(ctx context.Context) ([]models.Listing, error) {
	body, err := b.client.FetchText(ctx, b.url)
	if err != nil {
		return nil, err
	}

	section, err := extractSection(body, b.section)
	if err != nil {
		return nil, err
	}

	return parseBoardRows(b.name, b.url, section, b.ageCell), nil
}

// extractSection returns the slice of doc from the section header up to the
// next second-level header, or to the end of the document.
func extractSection(doc string, header string) (string, error) {
	start := strings.Index(doc, header)
	if start < 0 {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, header)
	}

	section := doc[start:]
	if end := strings.Index(section[len(header):], "\n## "); end >= 0 {
		section = section[:len(header)+end]
	}
	return section, nil
}

func parseBoardRows(sourceName string, baseURL string, section string, ageCell bool) []models.Listing {
	minCells := 4
	if ageCell {
		minCells = 5
	}

	var listings []models.Listing
	for _, rowMatch := range rowPattern.FindAllStringSubmatch(section, -1) {
		row := rowMatch[1]

		// Closed positions keep their row but are marked with a lock.
		if strings.Contains(row, closedGlyph) {
			continue
		}
		// Continuation rows repeat the previous company as an arrow cell.
		if strings.Contains(row, ">"+continuationGlyph+"<") {
			continue
		}

		cellMatches := cellPattern.FindAllStringSubmatch(row, -1)
		if len(cellMatches) < minCells {
			continue
		}

		cells := make([]string, len(cellMatches))
		for i, cellMatch := range cellMatches {
			cells[i] = cellMatch[1]
		}

		l := models.Listing{
			Company:  firstLinkText(cells[0]),
			Role:     plainText(cells[1]),
			Location: plainText(cells[2]),
			Source:   sourceName,
		}
		if href := firstLinkHref(cells[3]); href != "" {
			l.ApplyLink = absoluteURL(baseURL, href)
		}
		if ageCell {
			l.Age = plainText(cells[4])
		}

		if l.Company == "" || l.Role == "" {
			continue
		}
		listings = append(listings, l)
	}

	return listings
}
