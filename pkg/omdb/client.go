package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseURL = "https://www.omdbapi.com"

// maxBodySize caps how much of a response body is read.
const maxBodySize = 1 << 20

// Sentinel errors for OMDb responses.
var (
	ErrNotFound     = errors.New("movie not found")
	ErrUnauthorized = errors.New("unauthorized: invalid api key")
	ErrRateLimited  = errors.New("rate limited: request limit reached")
)

// APIError is an OMDb error reported in an otherwise successful response
// ({"Response":"False","Error":"..."}) that maps to no sentinel.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "omdb: " + e.Message
}

// Client is an OMDb API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "omdb")
	}
}

// New creates a new OMDb client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Movie fetches the full record for an IMDb ID and returns the raw JSON
// payload. A "not found" flag in the payload is returned as ErrNotFound.
func (c *Client) Movie(ctx context.Context, imdbID string) ([]byte, error) {
	params := url.Values{}
	params.Set("i", imdbID)
	params.Set("type", "movie")
	params.Set("plot", "short")

	body, err := c.get(ctx, "movie", params)
	if err != nil {
		if c.log != nil && errors.Is(err, ErrNotFound) {
			c.log.Debug("movie not found", "imdb_id", imdbID)
		}
		return nil, err
	}
	return body, nil
}

// Search runs a title search and returns the first page of candidates.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("s", query)
	params.Set("type", "movie")
	params.Set("page", "1")

	body, err := c.get(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	items := gjson.GetBytes(body, "Search").Array()
	results := make([]SearchResult, 0, len(items))
	for _, item := range items {
		id := item.Get("imdbID").String()
		if id == "" {
			continue
		}
		results = append(results, SearchResult{
			IMDbID: id,
			Title:  item.Get("Title").String(),
			Year:   item.Get("Year").String(),
			Type:   item.Get("Type").String(),
			Poster: item.Get("Poster").String(),
		})
	}

	if c.log != nil {
		c.log.Debug("search completed", "query", query, "results", len(results), "duration_ms", time.Since(start).Milliseconds())
	}
	return results, nil
}

// get performs one API call and returns the body of a successful response.
func (c *Client) get(ctx context.Context, op string, params url.Values) ([]byte, error) {
	ctx, span := otel.Tracer("cinefeed/omdb").Start(ctx, "omdb."+op)
	defer span.End()

	params.Set("apikey", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if err := checkStatus(resp); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("decode response: invalid json")
	}
	if err := checkFlag(body); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

// checkStatus maps HTTP-level failures to errors.
func checkStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("OMDb API error: %s", resp.Status)
	}
}

// checkFlag inspects the Response field OMDb sets on every payload.
func checkFlag(body []byte) error {
	if !strings.EqualFold(gjson.GetBytes(body, "Response").String(), "false") {
		return nil
	}
	msg := gjson.GetBytes(body, "Error").String()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "not found"), strings.Contains(lower, "incorrect imdb id"):
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case strings.Contains(lower, "invalid api key"), strings.Contains(lower, "no api key"):
		return ErrUnauthorized
	case strings.Contains(lower, "limit reached"):
		return ErrRateLimited
	default:
		return &APIError{Message: msg}
	}
}
