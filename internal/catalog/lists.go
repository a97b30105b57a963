package catalog

// DefaultTrending is the fixed trending list. OMDb has no ranking endpoint,
// so "trending" is a curated set of IMDb IDs.
var DefaultTrending = []string{
	"tt0111161", // The Shawshank Redemption
	"tt0068646", // The Godfather
	"tt0071562", // The Godfather Part II
	"tt0468569", // The Dark Knight
	"tt0050083", // 12 Angry Men
	"tt0108052", // Schindler's List
	"tt0137523", // Fight Club
	"tt0109830", // Forrest Gump
	"tt0110912", // Pulp Fiction
	"tt0099685", // Goodfellas
	"tt0816692", // Interstellar
	"tt1375666", // Inception
}

// DefaultPopular is the fixed popular list and the pool Similar samples from.
var DefaultPopular = []string{
	"tt0111161", // The Shawshank Redemption
	"tt0068646", // The Godfather
	"tt0071562", // The Godfather Part II
	"tt0468569", // The Dark Knight
	"tt0050083", // 12 Angry Men
	"tt0108052", // Schindler's List
	"tt0137523", // Fight Club
	"tt0109830", // Forrest Gump
	"tt0110912", // Pulp Fiction
	"tt0099685", // Goodfellas
	"tt0103064", // Terminator 2: Judgment Day
	"tt0245429", // Spirited Away
}
