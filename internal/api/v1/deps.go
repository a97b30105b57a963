package v1

import (
	"context"
	"errors"

	"github.com/vmunix/cinefeed/internal/catalog"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks . Gateway

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// Gateway is the movie data surface served by the API.
type Gateway interface {
	Trending(ctx context.Context) []catalog.Movie
	Popular(ctx context.Context) []catalog.Movie
	Search(ctx context.Context, query string) []catalog.Movie
	Details(ctx context.Context, rawID string) (catalog.Movie, bool)
	Similar(ctx context.Context, id string) []catalog.Movie
	ClearCache()
	CacheStats() (movies, lists int)
}
