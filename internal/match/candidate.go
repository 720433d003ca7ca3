package match

import (
	"sort"
)

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.5

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string
	// Score is the similarity of the normalized names (0-1, higher is better).
	Score float64
}

// CandidateList is a list of candidates ordered by descending score.
type CandidateList []Candidate

// RankCandidates scores every known name against input. Ties keep the order
// of known, so the result is deterministic.
func RankCandidates(input string, known []string) CandidateList {
	norm := NormalizeIdent(input)

	candidates := make(CandidateList, 0, len(known))
	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: Similarity(norm, NormalizeIdent(name)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates
}

// Above returns the candidates scoring at least threshold, at most n of them.
func (l CandidateList) Above(threshold float64, n int) CandidateList {
	var out CandidateList

	for _, c := range l {
		if len(out) == n {
			break
		}

		if c.Score < threshold {
			break
		}

		out = append(out, c)
	}

	return out
}

// Names returns the candidate names.
func (l CandidateList) Names() []string {
	names := make([]string, len(l))
	for i, c := range l {
		names[i] = c.Name
	}

	return names
}
