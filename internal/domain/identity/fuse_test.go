package identity

import (
	"testing"
	"time"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

func record(name, team, position string, score float64) rating.Rating {
	return rating.Rating{
		ID:          "r-" + name + "-" + team,
		DisplayName: name,
		Team:        team,
		Position:    position,
		Sport:       rating.SportFootball,
		Score:       score,
		CreatedAt:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Match:       rating.Match{ID: "m-1", HomeTeam: "PSG", AwayTeam: "OM"},
	}
}

func TestFuseMergesAliasesAcrossTeams(t *testing.T) {
	records := []rating.Rating{
		record("Messi", "PSG", "RW", 9.0),
		record("L. Messi", "Inter Miami", "RW", 8.5),
		record("Lionel Messi", "FC Barcelone", "CF", 9.3),
	}

	result := Fuse(records, DomainPlayer)

	if len(result.Identities) != 1 {
		t.Fatalf("identities = %d, want 1", len(result.Identities))
	}
	if result.OriginalCount != 3 {
		t.Fatalf("OriginalCount = %d, want 3", result.OriginalCount)
	}

	fused, ok := result.Lookup("lionel messi")
	if !ok {
		t.Fatal("no identity for key lionel messi")
	}
	if fused.DisplayName != "Lionel Messi" {
		t.Fatalf("DisplayName = %q, want Lionel Messi", fused.DisplayName)
	}
	if got := fused.Teams.Items(); len(got) != 3 || got[0] != "PSG" || got[1] != "Inter Miami" || got[2] != "FC Barcelone" {
		t.Fatalf("Teams = %v, want insertion order [PSG Inter Miami FC Barcelone]", got)
	}
	if got := fused.Positions.Items(); len(got) != 2 || got[0] != "RW" || got[1] != "CF" {
		t.Fatalf("Positions = %v, want [RW CF]", got)
	}
	if len(fused.Ratings) != 3 {
		t.Fatalf("Ratings = %d, want 3", len(fused.Ratings))
	}
}

func TestFuseKeepsDistinctPeopleApart(t *testing.T) {
	records := []rating.Rating{
		record("Messi", "PSG", "RW", 9.0),
		record("Griezmann", "Atletico Madrid", "AM", 7.5),
	}

	result := Fuse(records, DomainPlayer)

	if len(result.Identities) != 2 {
		t.Fatalf("identities = %d, want 2", len(result.Identities))
	}
	if result.Identities[0].Key != "lionel messi" || result.Identities[1].Key != "antoine griezmann" {
		t.Fatalf("first-seen order broken: %q, %q", result.Identities[0].Key, result.Identities[1].Key)
	}
}

func TestFuseDropsCoaches(t *testing.T) {
	records := []rating.Rating{
		record("Messi", "PSG", "RW", 9.0),
		record("Luis Enrique", "PSG", "COACH", 8.0),
		record("Luis Enrique", "PSG", "coach", 7.0),
	}

	result := Fuse(records, DomainPlayer)

	if len(result.Identities) != 1 {
		t.Fatalf("identities = %d, want 1 (coaches excluded)", len(result.Identities))
	}
	if result.OriginalCount != 1 {
		t.Fatalf("OriginalCount = %d, want 1", result.OriginalCount)
	}
	if result.Skipped != 0 {
		t.Fatalf("Skipped = %d, want 0 (coach exclusion is not a skip)", result.Skipped)
	}
}

func TestFuseCountsMalformedRecords(t *testing.T) {
	broken := record("", "PSG", "RW", 9.0)
	outOfRange := record("Messi", "PSG", "RW", 11.0)

	result := Fuse([]rating.Rating{broken, outOfRange, record("Messi", "PSG", "RW", 9.0)}, DomainPlayer)

	if result.Skipped != 2 {
		t.Fatalf("Skipped = %d, want 2", result.Skipped)
	}
	if result.OriginalCount != 1 {
		t.Fatalf("OriginalCount = %d, want 1", result.OriginalCount)
	}
}

func TestFuseOrderInsensitiveGrouping(t *testing.T) {
	a := record("Messi", "PSG", "RW", 9.0)
	b := record("L. Messi", "Inter Miami", "RW", 8.5)
	c := record("Griezmann", "Atletico Madrid", "AM", 7.5)

	forward := Fuse([]rating.Rating{a, b, c}, DomainPlayer)
	reversed := Fuse([]rating.Rating{c, b, a}, DomainPlayer)

	if len(forward.Identities) != len(reversed.Identities) {
		t.Fatalf("identity count differs: %d vs %d", len(forward.Identities), len(reversed.Identities))
	}
	for _, fused := range forward.Identities {
		other, ok := reversed.Lookup(fused.Key)
		if !ok {
			t.Fatalf("key %q missing after reorder", fused.Key)
		}
		if len(other.Ratings) != len(fused.Ratings) {
			t.Fatalf("key %q rating count differs: %d vs %d", fused.Key, len(fused.Ratings), len(other.Ratings))
		}
		if other.Teams.Len() != fused.Teams.Len() {
			t.Fatalf("key %q team count differs", fused.Key)
		}
	}
}

func TestFuseEmptyInput(t *testing.T) {
	result := Fuse(nil, DomainPlayer)
	if len(result.Identities) != 0 || result.OriginalCount != 0 || result.Skipped != 0 {
		t.Fatalf("empty input produced %+v", result)
	}
}
