package match

import (
	"strings"
	"unicode"
)

// methodPrefix is dropped so that "SerializeUnitStruct" ranks close to "unit_struct".
const methodPrefix = "serialize"

// NormalizeIdent normalizes an identifier for fuzzy matching:
// CamelCase is split, everything is lower-cased, separators (_, -, space)
// are removed and a leading "serialize" is stripped.
func NormalizeIdent(s string) string {
	tokens := tokenizeCamelCase(s)
	joined := strings.ToLower(strings.Join(tokens, ""))

	if strings.HasPrefix(joined, methodPrefix) && len(joined) > len(methodPrefix) {
		joined = strings.TrimPrefix(joined, methodPrefix)
	}

	return joined
}

// tokenizeCamelCase splits a CamelCase or snake_case identifier into tokens.
// Examples:
//   - "UnitStruct" -> ["Unit", "Struct"]
//   - "newtype_variant" -> ["newtype", "variant"]
//   - "I64" -> ["I64"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) && !isSeparator(runes[i-1]) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
