package identity

import (
	"github.com/gfoot/sportrate/internal/domain/rating"
)

// FusedIdentity is one real-world person's merged record across every team
// they represented within the queried rating set. It lives for a single
// computation run and is never persisted.
type FusedIdentity struct {
	Key         string
	DisplayName string
	Sport       rating.Sport
	Teams       *Set
	Positions   *Set
	Ratings     []rating.Rating

	// hint is the raw name of the first record seen for this key; display
	// resolution falls back to it when no canonical entry exists.
	hint string
}

// FuseResult carries the fused identities in first-seen order plus counters
// for the fusion-efficiency stats.
type FuseResult struct {
	Identities []*FusedIdentity
	byKey      map[string]*FusedIdentity

	// OriginalCount is the number of records that entered fusion after the
	// coach filter; Skipped counts malformed records dropped on the way in.
	OriginalCount int
	Skipped       int
}

// Lookup returns the fused identity for a normalized key, if any.
func (r FuseResult) Lookup(key string) (*FusedIdentity, bool) {
	id, ok := r.byKey[key]
	return id, ok
}

// Fuse groups raw per-team rating records into fused identities by normalized
// name. Coach records never produce an identity; malformed records are
// counted and dropped. The resulting Teams and Positions sets preserve
// insertion order, and Ratings preserve input order.
func Fuse(records []rating.Rating, domain Domain) FuseResult {
	result := FuseResult{byKey: make(map[string]*FusedIdentity)}

	for _, record := range records {
		if record.IsCoach() {
			continue
		}
		if err := record.Validate(); err != nil {
			result.Skipped++
			continue
		}
		result.OriginalCount++

		key := Normalize(record.DisplayName, domain)
		fused, ok := result.byKey[key]
		if !ok {
			fused = &FusedIdentity{
				Key:       key,
				Sport:     record.Sport,
				Teams:     NewSet(),
				Positions: NewSet(),
				hint:      record.DisplayName,
			}
			result.byKey[key] = fused
			result.Identities = append(result.Identities, fused)
		}

		fused.Teams.Add(record.Team)
		fused.Positions.Add(record.Position)
		fused.Ratings = append(fused.Ratings, record)
	}

	for _, fused := range result.Identities {
		fused.DisplayName = ResolveDisplayName(fused.hint, fused.Key, domain)
	}

	return result
}
