package analytics

import (
	"testing"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withStats(p domain.Profile, s domain.StatBundle) domain.PlayerStats {
	return domain.PlayerStats{Profile: p, Stats: s}
}

func TestSample(t *testing.T) {
	profiles := fixture()

	a := Sample(profiles, 4, 7)
	b := Sample(profiles, 4, 7)
	require.Len(t, a, 4)
	assert.Equal(t, a, b)

	seen := make(map[int]bool)
	for _, p := range a {
		assert.False(t, seen[p.ID], "repeated %d", p.ID)
		seen[p.ID] = true
	}

	assert.Len(t, Sample(profiles, 50, 7), len(profiles))
	assert.Empty(t, Sample(profiles, 0, 7))
	assert.Empty(t, Sample(nil, 5, 7))
}

func TestLeaderboard(t *testing.T) {
	p := fixture()
	stats := []domain.PlayerStats{
		withStats(p[0], domain.StatBundle{Runs: 5000, Wickets: 2, Matches: 200}),
		withStats(p[1], domain.StatBundle{Runs: 3000, Wickets: 1, Matches: 120}),
		withStats(p[2], domain.StatBundle{Runs: 400, Wickets: 300, Matches: 150}),
		withStats(p[3], domain.StatBundle{Runs: 5000, Wickets: 30, Matches: 250}),
	}
	names := func(in []domain.PlayerStats) []string {
		out := make([]string, 0, len(in))
		for _, s := range in {
			out = append(out, s.Profile.FullName)
		}
		return out
	}
	assert.Equal(t, []string{"Virat Kohli", "Joe Root"}, names(Leaderboard(stats, MetricRuns, 2)))
	assert.Equal(t, []string{"Jasprit Bumrah", "Joe Root", "Virat Kohli"}, names(Leaderboard(stats, MetricWickets, 3)))
	assert.Equal(t, []string{"Joe Root"}, names(Leaderboard(stats, MetricMatches, 1)))
	assert.Len(t, Leaderboard(stats, MetricRuns, 10), 4)
}

func TestDreamTeam(t *testing.T) {
	var stats []domain.PlayerStats
	add := func(id int, position string, s domain.StatBundle) {
		p := player(id, "Player "+string(rune('A'+id)), "India", "Asia", position, domain.GenderMale, 0)
		stats = append(stats, withStats(p, s))
	}
	for i := 0; i < 6; i++ {
		add(i, "Batsman", domain.StatBundle{BattingAverage: float64(30 + i)})
	}
	for i := 6; i < 12; i++ {
		add(i, "Bowler", domain.StatBundle{Wickets: 100 + i})
	}
	add(12, "Allrounder", domain.StatBundle{Runs: 3000})
	add(13, "Allrounder", domain.StatBundle{Runs: 2000})
	add(14, "Allrounder", domain.StatBundle{Runs: 1000})
	add(15, "Wicketkeeper batsman", domain.StatBundle{BattingAverage: 99, Catches: 150})
	add(16, "Wicketkeeper", domain.StatBundle{Catches: 100})

	team := DreamTeam(stats)
	require.Len(t, team, TeamSize)

	var ids []int
	for _, s := range team {
		ids = append(ids, s.Profile.ID)
	}
	// 15 bats best, so the keeper slot falls to 16.
	assert.Equal(t, []int{15, 5, 4, 3, 11, 10, 9, 8, 12, 13, 16}, ids)
}

func TestDreamTeamSmallPool(t *testing.T) {
	p := fixture()
	team := DreamTeam([]domain.PlayerStats{
		withStats(p[0], domain.StatBundle{BattingAverage: 50}),
		withStats(p[4], domain.StatBundle{Runs: 4000, Wickets: 100}),
	})
	require.Len(t, team, 2)
	assert.Equal(t, "Virat Kohli", team[0].Profile.FullName)
	assert.Equal(t, "Ben Stokes", team[1].Profile.FullName)
}

func TestStrokes(t *testing.T) {
	mk := func(sweep, glance int) domain.PlayerStats {
		s := make(map[domain.Stroke]int, len(domain.Strokes))
		for _, stroke := range domain.Strokes {
			s[stroke] = 10
		}
		s[domain.Sweep] = sweep
		s[domain.Glance] = glance
		return domain.PlayerStats{Stats: domain.StatBundle{Strokes: s}}
	}
	r := Strokes([]domain.PlayerStats{mk(30, 5), mk(20, 15), mk(25, 9)})
	assert.Equal(t, 3, r.Players)
	require.Len(t, r.Usage, len(domain.Strokes))
	assert.Equal(t, StrokeUsage{Stroke: domain.Sweep, Avg: 25, Min: 20, Max: 30}, r.Usage[0])
	require.Len(t, r.Signature, 3)
	assert.Equal(t, domain.StraightDrive, r.Signature[1].Stroke)
	assert.Equal(t, StrokeUsage{Stroke: domain.Glance, Avg: 9.7, Min: 5, Max: 15}, r.Usage[len(r.Usage)-1])

	empty := Strokes(nil)
	assert.Zero(t, empty.Players)
	assert.Empty(t, empty.Signature)
}
