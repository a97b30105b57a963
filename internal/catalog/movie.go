//go:generate mockgen -source=gateway.go -destination=mocks/mock_api.go -package=mocks

// Package catalog is the movie data gateway: it resolves catalog queries
// against OMDb, normalizes payloads into Movie records and caches them.
package catalog

// NotAvailable marks an absent image reference.
const NotAvailable = "N/A"

// NoDescription is the overview used when the source has no plot.
const NoDescription = "No description available"

// Movie is the canonical movie record. Every field is always set; absent
// source data maps to the documented default, never to a missing field.
type Movie struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Overview       string  `json:"overview"`
	PosterPath     string  `json:"poster_path"`
	BackdropPath   string  `json:"backdrop_path"`
	VoteAverage    float64 `json:"vote_average"`
	ReleaseDate    string  `json:"release_date"` // "1999-10-15", or "1999-01-01" when only the year is known
	Genres         []Genre `json:"genres"`
	RuntimeMinutes int     `json:"runtime"`
	IMDbRating     string  `json:"imdb_rating"`
	IMDbVotes      string  `json:"imdb_votes"`
}

// Genre is a movie genre. IDs are positional within one record.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
