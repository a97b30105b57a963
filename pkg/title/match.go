package title

import (
	"regexp"

	"github.com/hbollon/go-edlib"
)

var numberPattern = regexp.MustCompile(`\b(\d+)\b`)

// Confidence buckets a similarity score.
type Confidence int

const (
	ConfidenceNone   Confidence = iota // score < 0.70
	ConfidenceLow                      // score >= 0.70
	ConfidenceMedium                   // score >= 0.85
	ConfidenceHigh                     // score >= 0.95
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// Result is the best candidate found by Match.
type Result struct {
	Index      int // position in the candidate slice, -1 when nothing matched
	Title      string
	Score      float64
	Confidence Confidence
}

// Match returns the candidate most similar to query. Similarity is
// Jaro-Winkler over cleaned titles, nudged up when sequel numbers agree and
// down when they disagree ("Alien 3" vs "Aliens").
func Match(query string, candidates []string) Result {
	best := Result{Index: -1}
	if len(candidates) == 0 {
		return best
	}

	q := Clean(query)
	qNums := numberPattern.FindAllString(q, -1)

	for i, c := range candidates {
		cc := Clean(c)
		score := float64(edlib.JaroWinklerSimilarity(q, cc))
		score = adjustForNumbers(score, qNums, numberPattern.FindAllString(cc, -1))
		if score > best.Score {
			best = Result{Index: i, Title: c, Score: score}
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		return Result{Index: -1, Score: best.Score}
	}
	return best
}

func adjustForNumbers(score float64, want, got []string) float64 {
	if len(want) == 0 {
		return score
	}
	if len(got) == 0 {
		return score * 0.85
	}
	seen := make(map[string]bool, len(got))
	for _, n := range got {
		seen[n] = true
	}
	for _, n := range want {
		if seen[n] {
			return min(score*1.05, 1.0)
		}
	}
	return score * 0.90
}
