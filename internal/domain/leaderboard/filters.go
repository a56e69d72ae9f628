package leaderboard

import (
	"time"

	"github.com/gfoot/sportrate/internal/domain/identity"
	"github.com/gfoot/sportrate/internal/domain/rating"
)

// Period names a rolling or fixed date window restricting which ratings are
// considered.
type Period string

const (
	PeriodAllTime       Period = "all-time"
	PeriodThisYear      Period = "this-year"
	PeriodThisSeason    Period = "this-season"
	PeriodLastSixMonths Period = "last-6-months"
)

// seasonStartMonth anchors the football season window.
const seasonStartMonth = time.September

// Valid reports whether p names a supported window.
func (p Period) Valid() bool {
	switch p {
	case PeriodAllTime, PeriodThisYear, PeriodThisSeason, PeriodLastSixMonths:
		return true
	default:
		return false
	}
}

// WindowStart returns the inclusive lower bound for records, relative to now.
// The second return is false for all-time (no restriction). The season window
// starts at September 1st and crosses the year boundary: evaluated in
// February it anchors to the previous calendar year.
func (p Period) WindowStart(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodThisYear:
		return now.AddDate(-1, 0, 0), true
	case PeriodThisSeason:
		year := now.Year()
		if now.Month() < seasonStartMonth {
			year--
		}
		return time.Date(year, seasonStartMonth, 1, 0, 0, 0, 0, now.Location()), true
	case PeriodLastSixMonths:
		return now.AddDate(0, -6, 0), true
	default:
		return time.Time{}, false
	}
}

const (
	// FilterAll disables a sport or position filter.
	FilterAll = "all"

	DefaultMinSamples = 3
	DefaultLimit      = 50
)

// Filters are the resolved query parameters of one leaderboard computation.
type Filters struct {
	// Sport is an exact sport, or FilterAll.
	Sport string
	// Position keeps only identities that played the given position, or
	// FilterAll.
	Position string
	// MinSamples drops identities with fewer total ratings.
	MinSamples int
	// Limit truncates the ranked page.
	Limit int
	// Period restricts the input record window.
	Period Period
	// ExcludeDrivers drops the driver category from the "all" leaderboard
	// unless that category was explicitly requested.
	ExcludeDrivers bool
}

// Normalized fills defaults for zero values.
func (f Filters) Normalized() Filters {
	if f.Sport == "" {
		f.Sport = FilterAll
	}
	if f.Position == "" {
		f.Position = FilterAll
	}
	if f.MinSamples <= 0 {
		f.MinSamples = DefaultMinSamples
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Period == "" {
		f.Period = PeriodAllTime
	}
	return f
}

// DriverRequested reports whether the driver category itself was asked for.
func (f Filters) DriverRequested() bool {
	return rating.Sport(f.Sport) == rating.SportF1
}

// Domain selects the normalization tables for this computation.
func (f Filters) Domain() identity.Domain {
	if f.DriverRequested() {
		return identity.DomainDriver
	}
	return identity.DomainPlayer
}

// DriversExcluded reports whether driver records are dropped from the pool.
func (f Filters) DriversExcluded() bool {
	return f.ExcludeDrivers && !f.DriverRequested()
}
