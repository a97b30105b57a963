package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vmunix/cinefeed/internal/catalog"
)

// Client wraps HTTP calls to the cinefeed server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new cinefeed API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return serverError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) delete(path string, result any) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return serverError(resp)
	}

	if result != nil && resp.StatusCode == http.StatusOK {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// serverError prefers the API's {error, code} body over the raw text.
func serverError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
		return fmt.Errorf("server error %d: %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

// API response types (mirror server types)

type ListResponse struct {
	Items []catalog.Movie `json:"items"`
	Total int             `json:"total"`
}

type BestMatch struct {
	Movie      catalog.Movie `json:"movie"`
	Score      float64       `json:"score"`
	Confidence string        `json:"confidence"`
}

type SearchResponse struct {
	Query string          `json:"query"`
	Items []catalog.Movie `json:"items"`
	Total int             `json:"total"`
	Best  *BestMatch      `json:"best,omitempty"`
}

type StatusResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	CachedMovies int    `json:"cached_movies"`
	CachedLists  int    `json:"cached_lists"`
}

type ClearCacheResponse struct {
	Cleared bool `json:"cleared"`
}

// API methods

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/v1/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Trending() (*ListResponse, error) {
	var resp ListResponse
	if err := c.get("/api/v1/movies/trending", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Popular() (*ListResponse, error) {
	var resp ListResponse
	if err := c.get("/api/v1/movies/popular", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string, best bool) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	if best {
		params.Set("best", "1")
	}

	var resp SearchResponse
	if err := c.get("/api/v1/movies/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Movie(id string) (*catalog.Movie, error) {
	var resp catalog.Movie
	if err := c.get("/api/v1/movies/"+url.PathEscape(id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Similar(id string) (*ListResponse, error) {
	var resp ListResponse
	if err := c.get("/api/v1/movies/"+url.PathEscape(id)+"/similar", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ClearCache() (*ClearCacheResponse, error) {
	var resp ClearCacheResponse
	if err := c.delete("/api/v1/cache", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
