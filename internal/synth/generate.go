// Package synth produces deterministic, fictitious career statistics for a
// player profile. Nothing here is real data.
package synth

import (
	"errors"
	"math"
	"strings"

	"github.com/goserg/cricketboard/internal/domain"
)

var ErrMissingID = errors.New("profile has no valid id")

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

// StrokeRanges holds the base draw interval of every stroke before adjustments.
var StrokeRanges = map[domain.Stroke]Range{
	domain.StraightDrive: {15, 25},
	domain.CoverDrive:    {10, 20},
	domain.OffDrive:      {8, 18},
	domain.OnDrive:       {8, 18},
	domain.Pull:          {5, 15},
	domain.Hook:          {3, 12},
	domain.Cut:           {8, 18},
	domain.SquareCut:     {5, 15},
	domain.LateCut:       {3, 12},
	domain.LegGlide:      {8, 18},
	domain.Glance:        {10, 20},
	domain.Sweep:         {2, 10},
}

const aggressiveStrikeRate = 120

// Generate returns the bundle for p. The result depends on p.ID, p.Roles and
// p.BattingStyle only and is identical on every call.
func Generate(p domain.Profile) (domain.StatBundle, error) {
	if !p.HasID {
		return domain.StatBundle{}, ErrMissingID
	}
	d := draws{id: p.ID}
	var b domain.StatBundle

	strikeRate := batting(d, p.Roles, &b)
	bowling(d, p.Roles, &b)
	fielding(d, p.Roles, &b)
	b.Strokes = strokes(d, p.BattingStyle, strikeRate)
	return b, nil
}

func batting(d draws, roles domain.Roles, b *domain.StatBundle) float64 {
	var (
		average    float64
		strikeRate float64
		rateCap    float64
	)
	if roles.Bats() {
		b.Matches = d.intn("matches", 50, 300)
		b.Runs = d.intn("runs", 1000, 8000)
		average = float64(b.Runs) / math.Max(float64(b.Matches)*0.8, 1)
		rateCap = 140
		strikeRate = d.uniform("strike_rate", 70, rateCap)
		b.Centuries = d.intn("centuries", 0, max(1, b.Runs/2000))
		b.Fifties = d.intn("fifties", b.Centuries, max(b.Centuries+1, b.Runs/800))
	} else {
		b.Matches = d.intn("matches", 30, 200)
		b.Runs = d.intn("runs", 100, 2000)
		average = float64(b.Runs) / math.Max(float64(b.Matches)*0.4, 1)
		rateCap = 120
		strikeRate = d.uniform("strike_rate", 60, rateCap)
		b.Fifties = d.intn("fifties", 0, 3)
	}
	b.BattingAverage = round2(average)
	b.StrikeRate = roundBelow(strikeRate, rateCap)
	return strikeRate
}

func bowling(d draws, roles domain.Roles, b *domain.StatBundle) {
	if roles.Bowls() {
		b.Wickets = d.intn("wickets", 20, 400)
		b.BowlingAverage = roundBelow(d.uniform("bowling_avg", 15, 35), 35)
		b.EconomyRate = roundBelow(d.uniform("economy_rate", 3.5, 6.5), 6.5)
		b.FiveWicketHauls = d.intn("five_wickets", 0, max(1, b.Wickets/50))
		return
	}
	b.Wickets = d.intn("wickets", 0, 20)
	if b.Wickets > 0 {
		b.BowlingAverage = roundBelow(d.uniform("bowling_avg", 30, 50), 50)
	}
	b.EconomyRate = roundBelow(d.uniform("economy_rate", 4, 8), 8)
}

func fielding(d draws, roles domain.Roles, b *domain.StatBundle) {
	if roles.KeepsWicket() {
		b.Catches = d.intn("catches", max(1, b.Matches/2), b.Matches+1)
		b.Stumpings = d.intn("stumpings", 0, max(1, b.Matches/10)+1)
		return
	}
	b.Catches = d.intn("catches", 0, max(1, b.Matches/3)+1)
}

func strokes(d draws, battingStyle string, strikeRate float64) map[domain.Stroke]int {
	s := make(map[domain.Stroke]int, len(domain.Strokes))
	for _, stroke := range domain.Strokes {
		r := StrokeRanges[stroke]
		s[stroke] = d.intn("stroke:"+string(stroke), r.Min, r.Max)
	}
	if strings.Contains(strings.ToLower(battingStyle), "left") {
		s[domain.OnDrive] += 5
		s[domain.LegGlide] += 5
		s[domain.Pull] += 3
	} else {
		s[domain.CoverDrive] += 5
		s[domain.OffDrive] += 3
		s[domain.Cut] += 3
	}
	if strikeRate > aggressiveStrikeRate {
		s[domain.Pull] += 8
		s[domain.Hook] += 5
		s[domain.Cut] += 5
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundBelow rounds to two decimals without reaching the exclusive bound hi.
func roundBelow(v, hi float64) float64 {
	r := round2(v)
	if r >= hi {
		r = math.Floor(v*100) / 100
	}
	return r
}

