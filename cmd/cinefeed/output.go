package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmunix/cinefeed/internal/catalog"
)

func writeJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func releaseYear(m catalog.Movie) string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return "----"
}

func printMovies(w io.Writer, heading string, movies []catalog.Movie) {
	if len(movies) == 0 {
		fmt.Fprintln(w, "No movies found")
		return
	}

	fmt.Fprintf(w, "%s (%d):\n\n", heading, len(movies))
	fmt.Fprintf(w, "  # │ %-10s │ %-40s │ %4s │ %4s\n", "ID", "TITLE", "YEAR", "IMDB")
	fmt.Fprintln(w, "────┼────────────┼──────────────────────────────────────────┼──────┼──────")

	for i, m := range movies {
		title := m.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(w, " %2d │ %-10s │ %-40s │ %4s │ %4.1f\n", i+1, m.ID, title, releaseYear(m), m.VoteAverage)
	}
}

func printMovie(w io.Writer, m *catalog.Movie) {
	fmt.Fprintf(w, "%s (%s)\n", m.Title, releaseYear(*m))
	fmt.Fprintf(w, "  ID:       %s\n", m.ID)
	if m.IMDbRating != "" {
		fmt.Fprintf(w, "  Rating:   %s (%s votes)\n", m.IMDbRating, m.IMDbVotes)
	}
	if m.RuntimeMinutes > 0 {
		fmt.Fprintf(w, "  Runtime:  %d min\n", m.RuntimeMinutes)
	}
	if len(m.Genres) > 0 {
		names := make([]string, len(m.Genres))
		for i, g := range m.Genres {
			names[i] = g.Name
		}
		fmt.Fprintf(w, "  Genres:   %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(w, "  Poster:   %s\n", catalog.ImageURL(m.PosterPath, catalog.DefaultImageSize))
	fmt.Fprintf(w, "\n  %s\n", m.Overview)
}
