package listing

import (
	"strings"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
)

const keySeparator = "::"

// MergeStats captures bookkeeping from one merge pass.
type MergeStats struct {
	TotalIn    int
	Invalid    int
	Duplicates int
	TotalOut   int
}

// Key builds the dedup key for a listing. Matching is case-insensitive but
// otherwise literal: whitespace or punctuation differences keep listings
// distinct.
func Key(l models.Listing) (string, bool) {
	company := strings.ToLower(l.Company)
	role := strings.ToLower(l.Role)
	if company == "" || role == "" {
		return "", false
	}
	return company + keySeparator + role, true
}

// Merge concatenates batches in priority order, keeping the first listing
// seen for each key and preserving arrival order. Listings without a valid
// key are dropped.
func Merge(batches ...[]models.Listing) ([]models.Listing, MergeStats) {
	var stats MergeStats
	for _, batch := range batches {
		stats.TotalIn += len(batch)
	}

	keys := make(map[string]struct{}, stats.TotalIn)
	out := make([]models.Listing, 0, stats.TotalIn)

	for _, batch := range batches {
		for _, l := range batch {
			key, ok := Key(l)
			if !ok {
				stats.Invalid++
				continue
			}
			if _, exists := keys[key]; exists {
				stats.Duplicates++
				continue
			}
			keys[key] = struct{}{}
			out = append(out, l)
		}
	}

	stats.TotalOut = len(out)
	return out, stats
}
