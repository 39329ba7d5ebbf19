package analytics

import (
	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/normalize"

	mapset "github.com/deckarep/golang-set/v2"
)

// MaxResults caps a filtered player list.
const MaxResults = 100

// Filter selects profiles. Zero fields match everything.
type Filter struct {
	// Query matches a part of the full name, ignoring case and accents.
	Query     string
	Countries mapset.Set[string]
	Gender    domain.Gender
	Batting   string
	// MinAge and MaxAge are inclusive. Setting either excludes profiles
	// without a known age.
	MinAge *float64
	MaxAge *float64
}

func (f Filter) Match(p domain.Profile) bool {
	if f.Query != "" && !normalize.Contains(p.FullName, f.Query) {
		return false
	}
	if f.Countries != nil && f.Countries.Cardinality() > 0 && !f.Countries.Contains(p.CountryName) {
		return false
	}
	if f.Gender != domain.GenderUnknown && p.Gender != f.Gender {
		return false
	}
	if f.Batting != "" && p.BattingStyle != f.Batting {
		return false
	}
	if f.MinAge != nil || f.MaxAge != nil {
		if !p.HasAge() {
			return false
		}
		if f.MinAge != nil && p.Age < *f.MinAge {
			return false
		}
		if f.MaxAge != nil && p.Age > *f.MaxAge {
			return false
		}
	}
	return true
}

type FilterResult struct {
	Total     int              `json:"total"`
	Truncated bool             `json:"truncated"`
	Players   []domain.Profile `json:"players"`
}

// Apply keeps the matching profiles in load order, at most MaxResults of them.
// Total always holds the full match count.
func Apply(profiles []domain.Profile, f Filter) FilterResult {
	res := FilterResult{Players: make([]domain.Profile, 0)}
	for _, p := range profiles {
		if !f.Match(p) {
			continue
		}
		res.Total++
		if len(res.Players) < MaxResults {
			res.Players = append(res.Players, p)
		}
	}
	res.Truncated = res.Total > len(res.Players)
	return res
}

// Select keeps every matching profile in load order, without a cap.
func Select(profiles []domain.Profile, f Filter) []domain.Profile {
	out := make([]domain.Profile, 0)
	for _, p := range profiles {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Similar returns up to n other players from the same country with the same
// position, in load order.
func Similar(profiles []domain.Profile, p domain.Profile, n int) []domain.Profile {
	out := make([]domain.Profile, 0, n)
	for _, other := range profiles {
		if len(out) >= n {
			break
		}
		if other.FullName == p.FullName && other.CountryName == p.CountryName {
			continue
		}
		if other.CountryName == p.CountryName && other.Position == p.Position {
			out = append(out, other)
		}
	}
	return out
}
