package identity

import (
	"strings"
	"unicode"
)

// ResolveDisplayName picks the human-readable name for a fused identity.
// Canonical entries win so that well-known people render with the correct
// diacritics even though normalization strips them; everyone else gets a
// cosmetic title-case of the first raw name seen during fusion.
func ResolveDisplayName(hint, key string, domain Domain) string {
	canonical := canonicalPlayerNames
	if domain == DomainDriver {
		canonical = canonicalDriverNames
	}
	if name, ok := canonical[key]; ok {
		return name
	}

	return titleCase(hint)
}

func titleCase(name string) string {
	tokens := strings.Fields(name)
	for i, token := range tokens {
		runes := []rune(strings.ToLower(token))
		runes[0] = unicode.ToUpper(runes[0])
		tokens[i] = string(runes)
	}
	return strings.Join(tokens, " ")
}
