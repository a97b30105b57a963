package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrMalformed is returned for payloads that cannot become a Movie.
var ErrMalformed = errors.New("malformed movie payload")

var (
	yearPattern    = regexp.MustCompile(`^\d{4}`)
	leadingDigits  = regexp.MustCompile(`^\d+`)
	releasedLayout = "02 Jan 2006"
)

// Normalize maps a raw OMDb title payload to a Movie.
func Normalize(raw []byte) (Movie, error) {
	if !gjson.ValidBytes(raw) {
		return Movie{}, fmt.Errorf("%w: invalid json", ErrMalformed)
	}
	doc := gjson.ParseBytes(raw)

	id := field(doc, "imdbID")
	if id == "" {
		return Movie{}, fmt.Errorf("%w: missing imdbID", ErrMalformed)
	}

	poster := field(doc, "Poster")
	if poster == "" {
		poster = NotAvailable
	}
	overview := field(doc, "Plot")
	if overview == "" {
		overview = NoDescription
	}
	rating := field(doc, "imdbRating")

	return Movie{
		ID:             id,
		Title:          field(doc, "Title"),
		Overview:       overview,
		PosterPath:     poster,
		BackdropPath:   poster,
		VoteAverage:    parseRating(rating),
		ReleaseDate:    releaseDate(field(doc, "Released"), field(doc, "Year")),
		Genres:         parseGenres(field(doc, "Genre")),
		RuntimeMinutes: parseRuntime(field(doc, "Runtime")),
		IMDbRating:     rating,
		IMDbVotes:      field(doc, "imdbVotes"),
	}, nil
}

// field returns a trimmed string value, treating OMDb's "N/A" as absent.
func field(doc gjson.Result, path string) string {
	s := strings.TrimSpace(doc.Get(path).String())
	if s == NotAvailable {
		return ""
	}
	return s
}

func parseRating(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// releaseDate prefers the full release date and falls back to January 1st
// of the first year in Year ("2019–2021" uses 2019).
func releaseDate(released, year string) string {
	if t, err := time.Parse(releasedLayout, released); err == nil {
		return t.Format(time.DateOnly)
	}
	if y := yearPattern.FindString(year); y != "" {
		return y + "-01-01"
	}
	return ""
}

func parseGenres(s string) []Genre {
	genres := []Genre{}
	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		genres = append(genres, Genre{ID: len(genres), Name: name})
	}
	return genres
}

// parseRuntime reads the leading minutes of "139 min".
func parseRuntime(s string) int {
	n, err := strconv.Atoi(leadingDigits.FindString(s))
	if err != nil {
		return 0
	}
	return n
}
