package source

import (
	"context"
	"errors"

	"github.com/LogicodeHQ/hardware-jobs-internships-2026/internal/models"
)

// ErrSectionNotFound reports that the configured section header is absent
// from a fetched board document.
var ErrSectionNotFound = errors.New("section not found")

// Source turns one remote feed into normalized listings.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.Listing, error)
}
