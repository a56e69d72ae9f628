package leaderboard

import (
	"testing"
	"time"

	"github.com/gfoot/sportrate/internal/domain/identity"
)

func TestPeriodValid(t *testing.T) {
	for _, p := range []Period{PeriodAllTime, PeriodThisYear, PeriodThisSeason, PeriodLastSixMonths} {
		if !p.Valid() {
			t.Fatalf("Period %q should be valid", p)
		}
	}
	if Period("last-week").Valid() {
		t.Fatal("unknown period should be invalid")
	}
}

func TestPeriodWindowStart(t *testing.T) {
	now := time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC)

	t.Run("all-time has no window", func(t *testing.T) {
		if _, ok := PeriodAllTime.WindowStart(now); ok {
			t.Fatal("all-time should return ok=false")
		}
	})

	t.Run("this-year is a rolling year", func(t *testing.T) {
		start, ok := PeriodThisYear.WindowStart(now)
		if !ok {
			t.Fatal("expected a window")
		}
		want := time.Date(2024, time.April, 15, 12, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Fatalf("start = %v, want %v", start, want)
		}
	})

	t.Run("season before september anchors to previous year", func(t *testing.T) {
		february := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
		start, ok := PeriodThisSeason.WindowStart(february)
		if !ok {
			t.Fatal("expected a window")
		}
		want := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Fatalf("start = %v, want %v", start, want)
		}
	})

	t.Run("season from september anchors to current year", func(t *testing.T) {
		october := time.Date(2025, time.October, 2, 0, 0, 0, 0, time.UTC)
		start, ok := PeriodThisSeason.WindowStart(october)
		if !ok {
			t.Fatal("expected a window")
		}
		want := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Fatalf("start = %v, want %v", start, want)
		}
	})

	t.Run("last six months", func(t *testing.T) {
		start, ok := PeriodLastSixMonths.WindowStart(now)
		if !ok {
			t.Fatal("expected a window")
		}
		want := time.Date(2024, time.October, 15, 12, 0, 0, 0, time.UTC)
		if !start.Equal(want) {
			t.Fatalf("start = %v, want %v", start, want)
		}
	})
}

func TestFiltersNormalized(t *testing.T) {
	got := Filters{}.Normalized()

	if got.Sport != FilterAll || got.Position != FilterAll {
		t.Fatalf("defaults = %+v", got)
	}
	if got.MinSamples != DefaultMinSamples {
		t.Fatalf("MinSamples = %d, want %d", got.MinSamples, DefaultMinSamples)
	}
	if got.Limit != DefaultLimit {
		t.Fatalf("Limit = %d, want %d", got.Limit, DefaultLimit)
	}
	if got.Period != PeriodAllTime {
		t.Fatalf("Period = %q, want all-time", got.Period)
	}
}

func TestFiltersDriverFlags(t *testing.T) {
	f1 := Filters{Sport: "F1", ExcludeDrivers: true}
	if !f1.DriverRequested() {
		t.Fatal("F1 sport should mark the driver board")
	}
	if f1.DriversExcluded() {
		t.Fatal("explicit F1 request must override the driver exclusion")
	}
	if f1.Domain() != identity.DomainDriver {
		t.Fatalf("Domain = %q, want driver", f1.Domain())
	}

	mixed := Filters{Sport: FilterAll, ExcludeDrivers: true}
	if mixed.DriverRequested() {
		t.Fatal("all sports is not a driver board")
	}
	if !mixed.DriversExcluded() {
		t.Fatal("mixed board should exclude drivers when asked")
	}
	if mixed.Domain() != identity.DomainPlayer {
		t.Fatalf("Domain = %q, want player", mixed.Domain())
	}
}
