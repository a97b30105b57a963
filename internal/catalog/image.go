package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultImageSize is the poster width used when none is requested.
const DefaultImageSize = "300"

// amazonImageHost serves OMDb posters and accepts quality hints.
const amazonImageHost = "m.media-amazon"

// ImageURL resolves a raw poster reference to a displayable URL. Empty and
// "N/A" references become a placeholder sized to a 2:3 poster of the given
// width; OMDb poster URLs get a jpg quality hint.
func ImageURL(pathOrURL, size string) string {
	ref := strings.TrimSpace(pathOrURL)
	if ref == "" || ref == NotAvailable {
		return placeholderURL(size)
	}
	if strings.Contains(ref, amazonImageHost) {
		sep := "?"
		if strings.Contains(ref, "?") {
			sep = "&"
		}
		return ref + sep + "format=jpg&quality=85"
	}
	return ref
}

func placeholderURL(size string) string {
	w, err := strconv.Atoi(size)
	if err != nil || w <= 0 {
		w, _ = strconv.Atoi(DefaultImageSize)
	}
	return fmt.Sprintf("https://via.placeholder.com/%dx%d?text=No+Poster", w, w*3/2)
}
