package identity

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Domain selects which alias and canonical tables apply. Drivers get their
// own tables because motorsport names never collide with team-sport rosters.
type Domain string

const (
	DomainPlayer Domain = "player"
	DomainDriver Domain = "driver"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	initialRe    = regexp.MustCompile(`^([a-z])\.?\s*([a-z]+)$`)
)

// Normalize canonicalizes a raw display name into the key used to detect that
// two records refer to the same person. It is a pure function of the input
// and the static tables: lowercase, strip diacritics, keep [a-z -], collapse
// whitespace, then resolve aliases. Unknown names fall through to the folded
// form, so normalization never fails.
func Normalize(raw string, domain Domain) string {
	folded := fold(raw)

	aliases := playerAliases
	if domain == DomainDriver {
		aliases = driverAliases
	}
	if canonical, ok := aliases[folded]; ok {
		return canonical
	}

	// "L. Messi" style inputs: expand the initial when the surname is known.
	// The driver table has no initial entries, so this only fires for players.
	if domain == DomainPlayer {
		if m := initialRe.FindStringSubmatch(folded); m != nil {
			if surnames, ok := initialFirstNames[m[1]]; ok {
				if first, ok := surnames[m[2]]; ok {
					return first + " " + m[2]
				}
			}
		}
	}

	return folded
}

// fold lowercases, trims, strips diacritics via NFD decomposition, removes
// everything outside [a-z -] and collapses whitespace runs.
func fold(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return s
	}

	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
}
