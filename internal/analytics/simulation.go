package analytics

import (
	"math/rand/v2"
	"sort"

	"github.com/goserg/cricketboard/internal/domain"
)

// Sample picks up to size profiles without repetition. The same seed over the
// same snapshot always yields the same sample.
func Sample(profiles []domain.Profile, size int, seed uint64) []domain.Profile {
	size = min(size, len(profiles))
	if size <= 0 {
		return []domain.Profile{}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]domain.Profile, 0, size)
	for _, i := range r.Perm(len(profiles))[:size] {
		out = append(out, profiles[i])
	}
	return out
}

type Metric string

const (
	MetricRuns    Metric = "runs"
	MetricWickets Metric = "wickets"
	MetricMatches Metric = "matches"
)

func (m Metric) value(s domain.StatBundle) float64 {
	switch m {
	case MetricRuns:
		return float64(s.Runs)
	case MetricWickets:
		return float64(s.Wickets)
	case MetricMatches:
		return float64(s.Matches)
	}
	return 0
}

// Leaderboard returns the n best entries by metric. Ties keep input order.
func Leaderboard(stats []domain.PlayerStats, m Metric, n int) []domain.PlayerStats {
	return largest(stats, n, m.value, func(domain.Roles) bool { return true })
}

const TeamSize = 11

// DreamTeam picks four batsmen by batting average, four bowlers by wickets,
// two allrounders by runs and one wicketkeeper by catches. A player already
// picked for an earlier slot is skipped.
func DreamTeam(stats []domain.PlayerStats) []domain.PlayerStats {
	slots := []struct {
		n     int
		role  domain.Roles
		value func(domain.StatBundle) float64
	}{
		{4, domain.RoleBatsman, func(s domain.StatBundle) float64 { return s.BattingAverage }},
		{4, domain.RoleBowler, func(s domain.StatBundle) float64 { return float64(s.Wickets) }},
		{2, domain.RoleAllrounder, func(s domain.StatBundle) float64 { return float64(s.Runs) }},
		{1, domain.RoleWicketkeeper, func(s domain.StatBundle) float64 { return float64(s.Catches) }},
	}
	team := make([]domain.PlayerStats, 0, TeamSize)
	picked := make(map[identity]struct{}, TeamSize)
	for _, slot := range slots {
		role := slot.role
		candidates := largest(stats, len(stats), slot.value, func(r domain.Roles) bool { return r.Has(role) })
		n := 0
		for _, c := range candidates {
			if n == slot.n || len(team) == TeamSize {
				break
			}
			key := identityOf(c.Profile)
			if _, ok := picked[key]; ok {
				continue
			}
			picked[key] = struct{}{}
			team = append(team, c)
			n++
		}
	}
	return team
}

type identity struct {
	name    string
	country string
}

func identityOf(p domain.Profile) identity {
	return identity{name: p.FullName, country: p.CountryName}
}

func largest(stats []domain.PlayerStats, n int, value func(domain.StatBundle) float64, keep func(domain.Roles) bool) []domain.PlayerStats {
	out := make([]domain.PlayerStats, 0, len(stats))
	for _, s := range stats {
		if keep(s.Profile.Roles) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i].Stats) > value(out[j].Stats)
	})
	if n < len(out) {
		out = out[:max(n, 0)]
	}
	return out
}
