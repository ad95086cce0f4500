// Package feed fetches substitution rows from the upstream school feed.
package feed

import (
	"context"
	"time"

	"github.com/subplan/notification-dispatch/internal/domain"
)

//go:generate mockgen -source=source.go -destination=source_mock.go -package=feed

// Source returns the substitution rows published for a single school day.
// A day with no substitutions yields an empty slice, not an error.
type Source interface {
	FetchDay(ctx context.Context, date time.Time) ([]domain.SubstitutionRow, error)
}
