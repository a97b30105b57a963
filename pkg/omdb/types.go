// Package omdb provides a client for the OMDb movie metadata API.
package omdb

// SearchResult is one lightweight match from a title search.
type SearchResult struct {
	IMDbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}
