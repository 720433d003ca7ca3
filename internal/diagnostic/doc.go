// Package diagnostic provides structured errors, warnings and infos reported
// while loading, resolving and checking a stub file.
//
// Key capabilities:
//   - Unknown tag errors with "did you mean" suggestions
//   - Duplicate method definitions
//   - Type errors attributed to the stub that produced them
//   - Incomplete method set notes
package diagnostic
