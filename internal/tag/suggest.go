package tag

import (
	"github.com/samber/lo"

	"stub-generator/internal/match"
)

const maxSuggestions = 3

// Names returns the canonical names of all tags in declaration order.
func Names() []string {
	return lo.Map(All(), func(t Tag, _ int) string { return t.String() })
}

// Suggest returns up to three canonical names close to an unknown token.
func Suggest(name string) []string {
	return match.RankCandidates(name, Names()).Above(match.DefaultThreshold, maxSuggestions).Names()
}
