package v1

import "github.com/vmunix/cinefeed/internal/catalog"

// listResponse is the response for every movie list endpoint.
type listResponse struct {
	Items []catalog.Movie `json:"items"`
	Total int             `json:"total"`
}

func newListResponse(movies []catalog.Movie) listResponse {
	if movies == nil {
		movies = []catalog.Movie{}
	}
	return listResponse{Items: movies, Total: len(movies)}
}

// searchResponse is the response for GET /movies/search.
type searchResponse struct {
	Query string          `json:"query"`
	Items []catalog.Movie `json:"items"`
	Total int             `json:"total"`
	Best  *bestMatch      `json:"best,omitempty"`
}

type bestMatch struct {
	Movie      catalog.Movie `json:"movie"`
	Score      float64       `json:"score"`
	Confidence string        `json:"confidence"`
}

type imageResponse struct {
	URL string `json:"url"`
}

type statusResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	CachedMovies int    `json:"cached_movies"`
	CachedLists  int    `json:"cached_lists"`
}

type clearCacheResponse struct {
	Cleared bool `json:"cleared"`
}
