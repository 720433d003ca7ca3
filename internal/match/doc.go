// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest the intended name for a misspelled
// method tag.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
package match
