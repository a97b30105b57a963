package catalog

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vmunix/cinefeed/internal/cache"
	"github.com/vmunix/cinefeed/internal/telemetry"
	"github.com/vmunix/cinefeed/pkg/omdb"
)

// Cache key prefixes
const (
	keyPrefixMovie   = "movie_"
	keyPrefixSearch  = "search_"
	keyPrefixSimilar = "similar_"
)

// minQueryLen is the shortest search query sent upstream.
const minQueryLen = 2

var errUnavailable = errors.New("movie unavailable")

// API is the upstream movie metadata source. *omdb.Client satisfies it.
type API interface {
	Movie(ctx context.Context, imdbID string) ([]byte, error)
	Search(ctx context.Context, query string) ([]omdb.SearchResult, error)
}

// Config tunes the gateway. Zero fields take the DefaultConfig value.
type Config struct {
	RequestTimeout time.Duration
	MovieTTL       time.Duration
	SearchTTL      time.Duration
	SimilarTTL     time.Duration
	ListBatch      Batcher
	SearchBatch    Batcher
	SearchLimit    int
	SimilarCount   int
	Trending       []string
	Popular        []string
}

// DefaultConfig returns the stock gateway tuning.
func DefaultConfig() Config {
	return Config{
		RequestTimeout: 5 * time.Second,
		MovieTTL:       time.Hour,
		SearchTTL:      30 * time.Minute,
		SimilarTTL:     time.Hour,
		ListBatch:      Batcher{Concurrency: 4, Delay: 50 * time.Millisecond},
		SearchBatch:    Batcher{Concurrency: 3, Delay: 50 * time.Millisecond},
		SearchLimit:    10,
		SimilarCount:   12,
		Trending:       DefaultTrending,
		Popular:        DefaultPopular,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if c.MovieTTL <= 0 {
		c.MovieTTL = d.MovieTTL
	}
	if c.SearchTTL <= 0 {
		c.SearchTTL = d.SearchTTL
	}
	if c.SimilarTTL <= 0 {
		c.SimilarTTL = d.SimilarTTL
	}
	if c.ListBatch.Concurrency <= 0 {
		c.ListBatch.Concurrency = d.ListBatch.Concurrency
	}
	if c.SearchBatch.Concurrency <= 0 {
		c.SearchBatch.Concurrency = d.SearchBatch.Concurrency
	}
	if c.SearchLimit <= 0 {
		c.SearchLimit = d.SearchLimit
	}
	if c.SimilarCount <= 0 {
		c.SimilarCount = d.SimilarCount
	}
	if len(c.Trending) == 0 {
		c.Trending = d.Trending
	}
	if len(c.Popular) == 0 {
		c.Popular = d.Popular
	}
	return c
}

// Gateway is the movie data gateway. It never returns errors: failures are
// logged and surface as absent records or shorter lists.
type Gateway struct {
	api     API
	cfg     Config
	log     *slog.Logger
	metrics *telemetry.Metrics

	movies *cache.TTL[Movie]
	lists  *cache.TTL[[]Movie]

	inflight singleflight.Group
	shuffle  func(n int, swap func(i, j int))
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithMetrics records cache and upstream metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = m
	}
}

// WithCacheClock sets the clock used for cache expiry (for tests).
func WithCacheClock(now func() time.Time) Option {
	return func(g *Gateway) {
		g.movies = cache.New[Movie](cache.WithClock(now))
		g.lists = cache.New[[]Movie](cache.WithClock(now))
	}
}

// WithShuffle replaces the shuffle used to pick similar movies (for tests).
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(g *Gateway) {
		g.shuffle = shuffle
	}
}

// New creates a gateway over api.
func New(api API, cfg Config, log *slog.Logger, opts ...Option) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	g := &Gateway{
		api:     api,
		cfg:     cfg.withDefaults(),
		log:     log.With("component", "catalog"),
		movies:  cache.New[Movie](),
		lists:   cache.New[[]Movie](),
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.cfg.ListBatch.onGroup = g.countGroup
	g.cfg.SearchBatch.onGroup = g.countGroup
	return g
}

func (g *Gateway) countGroup(int) {
	g.metrics.BatchGroup()
}

// FetchByID returns the movie for an IMDb ID, from cache when possible.
// Concurrent misses for the same ID share one upstream request.
func (g *Gateway) FetchByID(ctx context.Context, imdbID string) (Movie, bool) {
	key := keyPrefixMovie + imdbID

	if m, ok := g.movies.Get(key); ok {
		g.metrics.CacheLookup("movie", true)
		g.log.Debug("cache hit for movie", "imdb_id", imdbID)
		return m, true
	}
	g.metrics.CacheLookup("movie", false)
	g.log.Debug("cache miss for movie, calling API", "imdb_id", imdbID)

	v, err, _ := g.inflight.Do(key, func() (any, error) {
		return g.fetchMovie(ctx, imdbID)
	})
	if err != nil {
		g.log.Warn("fetch movie failed", "imdb_id", imdbID, "error", err)
		return Movie{}, false
	}
	return v.(Movie), true
}

// fetchMovie performs the upstream call for FetchByID. The request gets its
// own timeout and is not cancelled by the caller, so a shared in-flight
// fetch survives one waiter going away.
func (g *Gateway) fetchMovie(ctx context.Context, imdbID string) (Movie, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), g.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	raw, err := g.api.Movie(ctx, imdbID)
	g.metrics.Upstream("movie", outcome(err), time.Since(start))
	if err != nil {
		return Movie{}, err
	}

	m, err := Normalize(raw)
	if err != nil {
		return Movie{}, err
	}
	g.movies.Set(keyPrefixMovie+imdbID, m, g.cfg.MovieTTL)
	return m, nil
}

// Trending returns the trending list.
func (g *Gateway) Trending(ctx context.Context) []Movie {
	return g.resolve(ctx, g.cfg.Trending, g.cfg.ListBatch)
}

// Popular returns the popular list.
func (g *Gateway) Popular(ctx context.Context) []Movie {
	return g.resolve(ctx, g.cfg.Popular, g.cfg.ListBatch)
}

// Search returns up to SearchLimit movies matching query. Queries shorter
// than two characters return an empty list without calling upstream.
func (g *Gateway) Search(ctx context.Context, query string) []Movie {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return []Movie{}
	}

	ctx, span := telemetry.Tracer("cinefeed/catalog").Start(ctx, "catalog.Search")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	key := keyPrefixSearch + searchKey(query)
	if movies, ok := g.lists.Get(key); ok {
		g.metrics.CacheLookup("search", true)
		g.log.Debug("cache hit for search", "query", query, "results", len(movies))
		return slices.Clone(movies)
	}
	g.metrics.CacheLookup("search", false)

	start := time.Now()
	searchCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	candidates, err := g.api.Search(searchCtx, query)
	cancel()
	g.metrics.Upstream("search", outcome(err), time.Since(start))
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			g.log.Debug("search found nothing", "query", query)
		} else {
			g.log.Warn("search failed", "query", query, "error", err)
		}
		return []Movie{}
	}

	ids := candidateIDs(candidates, g.cfg.SearchLimit)
	movies := g.resolve(ctx, ids, g.cfg.SearchBatch)

	// Empty results are never cached.
	if len(movies) > 0 {
		g.lists.Set(key, slices.Clone(movies), g.cfg.SearchTTL)
	}

	g.log.Info("search complete", "query", query, "candidates", len(ids), "results", len(movies), "duration_ms", time.Since(start).Milliseconds())
	return movies
}

// Details returns a movie by IMDb ID or bare number ("603" == "tt0000603").
func (g *Gateway) Details(ctx context.Context, rawID string) (Movie, bool) {
	if strings.TrimSpace(rawID) == "" {
		return Movie{}, false
	}
	return g.FetchByID(ctx, NormalizeID(rawID))
}

// Similar returns movies to show next to the given one. OMDb has no
// similarity endpoint, so this is a random sample of the popular pool,
// cached per movie so the selection is stable for SimilarTTL.
func (g *Gateway) Similar(ctx context.Context, id string) []Movie {
	if strings.TrimSpace(id) == "" {
		return []Movie{}
	}
	key := keyPrefixSimilar + NormalizeID(id)
	if movies, ok := g.lists.Get(key); ok {
		g.metrics.CacheLookup("similar", true)
		g.log.Debug("cache hit for similar", "id", id, "results", len(movies))
		return slices.Clone(movies)
	}
	g.metrics.CacheLookup("similar", false)

	pool := make([]string, len(g.cfg.Popular))
	copy(pool, g.cfg.Popular)
	g.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	pool = pool[:min(g.cfg.SimilarCount, len(pool))]

	movies := g.resolve(ctx, pool, g.cfg.ListBatch)
	if len(movies) > 0 {
		g.lists.Set(key, slices.Clone(movies), g.cfg.SimilarTTL)
	}
	return movies
}

// ClearCache drops every cached movie and list.
func (g *Gateway) ClearCache() {
	g.movies.Clear()
	g.lists.Clear()
	g.log.Info("cache cleared")
}

// CacheStats reports the number of stored movie and list entries.
func (g *Gateway) CacheStats() (movies, lists int) {
	return g.movies.Len(), g.lists.Len()
}

// resolve batch-fetches ids, dropping the ones that fail.
func (g *Gateway) resolve(ctx context.Context, ids []string, b Batcher) []Movie {
	return Batch(ctx, b, ids, func(ctx context.Context, id string) (Movie, error) {
		if m, ok := g.FetchByID(ctx, id); ok {
			return m, nil
		}
		return Movie{}, errUnavailable
	})
}

// searchKey lower-cases a query for use as a cache fingerprint. Casers
// carry state, so each call gets its own.
func searchKey(query string) string {
	return cases.Lower(language.Und).String(query)
}

// candidateIDs takes the first limit distinct IDs from search candidates.
func candidateIDs(results []omdb.SearchResult, limit int) []string {
	ids := make([]string, 0, min(limit, len(results)))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		if len(ids) == limit {
			break
		}
		if r.IMDbID == "" || seen[r.IMDbID] {
			continue
		}
		seen[r.IMDbID] = true
		ids = append(ids, r.IMDbID)
	}
	return ids
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, omdb.ErrNotFound):
		return "not_found"
	case errors.Is(err, omdb.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
