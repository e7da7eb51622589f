package metadata

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// ParseBool converts the textual booleans used by dataset metadata tables.
// Only the literal TRUE and FALSE are accepted; anything else is a malformed
// row and fails the whole reconciliation pass.
func ParseBool(value string) (bool, error) {
	switch value {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	default:
		return false, fmt.Errorf("unparseable boolean %q", value)
	}
}

// NormalizeTokens splits a free-text multi-value field on "+" and ",",
// lower-cases each token, applies the dataset's canonical spelling map, and
// returns the deduplicated tokens in sorted order.
func NormalizeTokens(raw string, canonical map[string]string) []string {
	seen := make(map[string]struct{})
	for _, group := range strings.Split(raw, "+") {
		for _, token := range strings.Split(group, ",") {
			token = lowerCaser.String(strings.TrimSpace(token))
			if token == "" {
				continue
			}
			if replacement, ok := canonical[token]; ok {
				token = replacement
			}
			seen[token] = struct{}{}
		}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
