package match

// DefaultLookAlikeThreshold is the similarity at or above which two
// distinct aliases are reported as look-alikes.
const DefaultLookAlikeThreshold = 0.85

// Pair is two aliases that look alike.
type Pair struct {
	A, B  string
	Score float64
}

// LookAlikes returns every pair of distinct aliases whose similarity is at
// least threshold, in input order. Exact duplicates are not reported;
// they are a validation error, not a hint.
func LookAlikes(aliases []string, threshold float64) []Pair {
	var pairs []Pair

	for i := 0; i < len(aliases); i++ {
		for j := i + 1; j < len(aliases); j++ {
			a, b := aliases[i], aliases[j]
			if a == b {
				continue
			}

			if score := Similarity(a, b); score >= threshold {
				pairs = append(pairs, Pair{A: a, B: b, Score: score})
			}
		}
	}

	return pairs
}
