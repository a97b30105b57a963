package catalog

import "github.com/vmunix/cinefeed/pkg/title"

// BestMatch picks the movie whose title is closest to query. It reports
// false when no title is a plausible match.
func BestMatch(query string, movies []Movie) (Movie, title.Result, bool) {
	titles := make([]string, len(movies))
	for i, m := range movies {
		titles[i] = m.Title
	}
	r := title.Match(query, titles)
	if r.Index < 0 {
		return Movie{}, r, false
	}
	return movies[r.Index], r, true
}
