package synth

import (
	"testing"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(id int, position, battingStyle string) domain.Profile {
	return domain.Profile{
		ID:           id,
		HasID:        true,
		FullName:     "Player",
		CountryName:  "India",
		Position:     position,
		Roles:        domain.ParseRoles(position),
		BattingStyle: battingStyle,
	}
}

var positions = []string{
	"Batsman",
	"Bowler",
	"Allrounder",
	"Wicketkeeper",
	"Wicketkeeper batsman",
	"Batting Allrounder",
	"",
}

func TestGenerateDeterministic(t *testing.T) {
	for id := 1; id <= 200; id++ {
		p := profile(id, positions[id%len(positions)], "Left hand bat")
		first, err := Generate(p)
		require.NoError(t, err)
		other := p
		other.FullName = "Somebody Else"
		other.CountryName = "England"
		second, err := Generate(other)
		require.NoError(t, err)
		assert.Equal(t, first, second, "id %d", id)
	}
}

func TestGenerateRanges(t *testing.T) {
	for _, position := range positions {
		for id := 1; id <= 300; id++ {
			b, err := Generate(profile(id, position, "Right hand bat"))
			require.NoError(t, err)

			assert.GreaterOrEqual(t, b.Matches, 30)
			assert.Less(t, b.Matches, 300)
			assert.GreaterOrEqual(t, b.Wickets, 0)
			assert.Less(t, b.Wickets, 400)
			assert.GreaterOrEqual(t, b.EconomyRate, 3.5)
			assert.Less(t, b.EconomyRate, 8.0)
			assert.GreaterOrEqual(t, b.Fifties, b.Centuries)
			assert.GreaterOrEqual(t, b.Catches, 0)
			assert.LessOrEqual(t, b.Catches, b.Matches)

			require.Len(t, b.Strokes, len(domain.Strokes))
			for stroke, r := range StrokeRanges {
				assert.GreaterOrEqual(t, b.Strokes[stroke], r.Min, "%s id %d", stroke, id)
			}
		}
	}
}

func TestGenerateBattingBranches(t *testing.T) {
	for id := 1; id <= 300; id++ {
		b, err := Generate(profile(id, "Batsman", "Right hand bat"))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, b.Matches, 50)
		assert.GreaterOrEqual(t, b.Runs, 1000)
		assert.Less(t, b.Runs, 8000)
		assert.GreaterOrEqual(t, b.StrikeRate, 70.0)
		assert.Less(t, b.StrikeRate, 140.0)
		assert.Less(t, b.Wickets, 20)
		assert.Zero(t, b.FiveWicketHauls)
		if b.Wickets == 0 {
			assert.Zero(t, b.BowlingAverage)
		}

		b, err = Generate(profile(id, "Bowler", "Right hand bat"))
		require.NoError(t, err)
		assert.Zero(t, b.Centuries, "bowler id %d", id)
		assert.Less(t, b.Fifties, 3)
		assert.Less(t, b.Matches, 200)
		assert.GreaterOrEqual(t, b.Wickets, 20)
		assert.GreaterOrEqual(t, b.BowlingAverage, 15.0)
		assert.Less(t, b.BowlingAverage, 35.0)
		assert.Less(t, b.EconomyRate, 6.5)
	}
}

func TestGenerateCenturiesAppear(t *testing.T) {
	seen := false
	for id := 1; id <= 300 && !seen; id++ {
		b, err := Generate(profile(id, "Batsman", ""))
		require.NoError(t, err)
		seen = b.Centuries > 0
	}
	assert.True(t, seen, "batsmen should sometimes score centuries")
}

func TestGenerateFielding(t *testing.T) {
	stumped := false
	for id := 1; id <= 300; id++ {
		keeper, err := Generate(profile(id, "Wicketkeeper", ""))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, keeper.Catches, max(1, keeper.Matches/2))
		assert.LessOrEqual(t, keeper.Stumpings, max(1, keeper.Matches/10))
		if keeper.Stumpings > 0 {
			stumped = true
		}

		fielder, err := Generate(profile(id, "Batsman", ""))
		require.NoError(t, err)
		assert.Zero(t, fielder.Stumpings)
		assert.LessOrEqual(t, fielder.Catches, max(1, fielder.Matches/3))
	}
	assert.True(t, stumped, "keeper stumpings must not be constant zero")
}

func TestGenerateStrokeAdjustments(t *testing.T) {
	for id := 1; id <= 100; id++ {
		left, err := Generate(profile(id, "Batsman", "Left hand bat"))
		require.NoError(t, err)
		right, err := Generate(profile(id, "Batsman", "Right hand bat"))
		require.NoError(t, err)

		assert.Equal(t, left.Strokes[domain.OnDrive]-5, right.Strokes[domain.OnDrive])
		assert.Equal(t, left.Strokes[domain.LegGlide]-5, right.Strokes[domain.LegGlide])
		assert.Equal(t, right.Strokes[domain.CoverDrive]-5, left.Strokes[domain.CoverDrive])
		assert.Equal(t, right.Strokes[domain.OffDrive]-3, left.Strokes[domain.OffDrive])
		assert.Equal(t, left.Strokes[domain.Sweep], right.Strokes[domain.Sweep])

		bonus := 0
		if left.StrikeRate > aggressiveStrikeRate {
			bonus = 8
		}
		assert.Equal(t, left.Strokes[domain.Pull]-3, right.Strokes[domain.Pull])
		assert.GreaterOrEqual(t, left.Strokes[domain.Pull], StrokeRanges[domain.Pull].Min+3+bonus)
	}
}

func TestGenerateScenario(t *testing.T) {
	b, err := Generate(profile(42, "Batsman", "Right hand bat"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, b.Matches, 50)
	assert.Less(t, b.Matches, 300)
	assert.GreaterOrEqual(t, b.Runs, 1000)
	assert.Less(t, b.Runs, 8000)
	assert.Less(t, b.Wickets, 20)
	assert.InDelta(t, float64(b.Runs)/(float64(b.Matches)*0.8), b.BattingAverage, 0.005)
}

func TestGenerateMissingID(t *testing.T) {
	p := profile(0, "Batsman", "")
	p.HasID = false
	_, err := Generate(p)
	assert.ErrorIs(t, err, ErrMissingID)
}

func TestRoundBelow(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		hi   float64
		want float64
	}{
		{name: "plain", v: 5.123, hi: 8, want: 5.12},
		{name: "round up", v: 5.126, hi: 8, want: 5.13},
		{name: "near bound", v: 7.998, hi: 8, want: 7.99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, roundBelow(tt.v, tt.hi), 1e-9)
		})
	}
}
