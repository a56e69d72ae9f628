package leaderboard

import (
	"testing"

	"github.com/gfoot/sportrate/internal/domain/rating"
)

func entry(key string, avg float64, totalRatings, totalMatches int, sport rating.Sport, positions ...string) Entry {
	return Entry{
		ID:            "fused_" + key,
		Name:          key,
		NormalizedKey: key,
		Positions:     positions,
		Sport:         sport,
		AvgRating:     avg,
		TotalRatings:  totalRatings,
		TotalMatches:  totalMatches,
	}
}

func TestRankOrdersByAverage(t *testing.T) {
	entries := []Entry{
		entry("b", 7.5, 5, 5, rating.SportFootball),
		entry("a", 9.1, 4, 4, rating.SportFootball),
		entry("c", 8.2, 6, 6, rating.SportFootball),
	}

	page, _ := Rank(entries, Filters{MinSamples: 1}, 3)

	if page[0].NormalizedKey != "a" || page[1].NormalizedKey != "c" || page[2].NormalizedKey != "b" {
		t.Fatalf("order = %q %q %q", page[0].NormalizedKey, page[1].NormalizedKey, page[2].NormalizedKey)
	}
}

func TestRankEpsilonTieBreakOnMatches(t *testing.T) {
	entries := []Entry{
		entry("fewer", 8.500, 10, 4, rating.SportFootball),
		entry("more", 8.495, 10, 9, rating.SportFootball),
	}

	page, _ := Rank(entries, Filters{MinSamples: 1}, 2)

	// The 0.005 gap is inside the tie band, so match volume decides.
	if page[0].NormalizedKey != "more" {
		t.Fatalf("tie-break failed, first = %q", page[0].NormalizedKey)
	}
}

func TestRankMinSamplesFilter(t *testing.T) {
	entries := []Entry{
		entry("veteran", 7.0, 5, 5, rating.SportFootball),
		entry("one-hit", 10.0, 1, 1, rating.SportFootball),
	}

	page, stats := Rank(entries, Filters{MinSamples: 3}, 2)

	if len(page) != 1 || page[0].NormalizedKey != "veteran" {
		t.Fatalf("page = %+v, want only veteran", page)
	}
	if stats.TotalPlayers != 1 {
		t.Fatalf("TotalPlayers = %d, want 1", stats.TotalPlayers)
	}
}

func TestRankPositionFilter(t *testing.T) {
	entries := []Entry{
		entry("winger", 8.0, 5, 5, rating.SportFootball, "RW"),
		entry("keeper", 8.5, 5, 5, rating.SportFootball, "GK"),
	}

	page, _ := Rank(entries, Filters{MinSamples: 1, Position: "GK"}, 2)

	if len(page) != 1 || page[0].NormalizedKey != "keeper" {
		t.Fatalf("page = %+v, want only keeper", page)
	}
}

func TestRankLimitTruncatesPageNotStats(t *testing.T) {
	entries := []Entry{
		entry("a", 9.0, 5, 5, rating.SportFootball),
		entry("b", 8.0, 5, 5, rating.SportFootball),
		entry("c", 7.0, 5, 5, rating.SportFootball),
	}

	page, stats := Rank(entries, Filters{MinSamples: 1, Limit: 2}, 3)

	if len(page) != 2 {
		t.Fatalf("page = %d entries, want 2", len(page))
	}
	if stats.TotalPlayers != 3 {
		t.Fatalf("TotalPlayers = %d, want full pool of 3", stats.TotalPlayers)
	}
	if stats.TotalRatings != 15 {
		t.Fatalf("TotalRatings = %d, want 15", stats.TotalRatings)
	}
	if stats.TopRating != 9.0 {
		t.Fatalf("TopRating = %v, want 9.0", stats.TopRating)
	}
}

func TestRankEmptyPool(t *testing.T) {
	page, stats := Rank(nil, Filters{}, 0)

	if len(page) != 0 {
		t.Fatalf("page = %d entries, want 0", len(page))
	}
	if stats.TotalPlayers != 0 || stats.AvgRating != 0 || stats.TopRating != 0 {
		t.Fatalf("stats = %+v, want zeros", stats)
	}
	if len(stats.SportBreakdown) != 0 {
		t.Fatalf("SportBreakdown = %v, want empty", stats.SportBreakdown)
	}
}

func TestRankSportBreakdownFirstSeenOrder(t *testing.T) {
	entries := []Entry{
		entry("player1", 8.0, 5, 5, rating.SportFootball),
		entry("baller", 7.0, 5, 5, rating.SportBasketball),
		entry("player2", 6.0, 5, 5, rating.SportFootball),
	}

	_, stats := Rank(entries, Filters{MinSamples: 1}, 3)

	if len(stats.SportBreakdown) != 2 {
		t.Fatalf("SportBreakdown = %d, want 2", len(stats.SportBreakdown))
	}
	football := stats.SportBreakdown[0]
	if football.Sport != rating.SportFootball || football.PlayerCount != 2 || football.AvgRating != 7.0 {
		t.Fatalf("football breakdown = %+v", football)
	}
	if stats.SportBreakdown[1].Sport != rating.SportBasketball {
		t.Fatalf("second sport = %q", stats.SportBreakdown[1].Sport)
	}
}

func TestRankFusionStats(t *testing.T) {
	entries := []Entry{
		entry("a", 9.0, 5, 5, rating.SportFootball),
		entry("b", 8.0, 5, 5, rating.SportFootball),
	}

	_, stats := Rank(entries, Filters{MinSamples: 1}, 7)

	if stats.Fusion.OriginalCount != 7 || stats.Fusion.FusedCount != 2 || stats.Fusion.Reduction != 5 {
		t.Fatalf("Fusion = %+v", stats.Fusion)
	}
}
