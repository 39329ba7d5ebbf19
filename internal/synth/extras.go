package synth

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/goserg/cricketboard/internal/domain"
)

// TopStrokes returns the n highest scored strokes. Ties keep display order.
func TopStrokes(b domain.StatBundle, n int) []domain.StrokeScore {
	scores := make([]domain.StrokeScore, 0, len(domain.Strokes))
	for _, stroke := range domain.Strokes {
		scores = append(scores, domain.StrokeScore{Stroke: stroke, Score: b.Strokes[stroke]})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if n < len(scores) {
		scores = scores[:n]
	}
	return scores
}

type Highlights struct {
	BestPerformance int    `json:"best_performance"`
	BestBowling     string `json:"best_bowling"`
}

// HighlightsFor derives the headline numbers shown on a player card.
func HighlightsFor(p domain.Profile, b domain.StatBundle) Highlights {
	d := draws{id: p.ID}
	return Highlights{
		BestPerformance: b.Runs / 10,
		BestBowling:     fmt.Sprintf("%d-%d", b.Wickets/10, d.intn("best_bowling_runs", 10, 50)),
	}
}

type SeasonRuns struct {
	Year int `json:"year"`
	Runs int `json:"runs"`
}

const (
	firstSeason        = 2015
	seasons            = 10
	progressionMinRuns = 500
)

// Progression spreads the career runs over ten seasons with a rise-and-decline
// curve. Players with 500 runs or fewer get no progression.
func Progression(p domain.Profile, b domain.StatBundle) []SeasonRuns {
	if b.Runs <= progressionMinRuns {
		return nil
	}
	d := draws{id: p.ID}
	base := b.Runs / seasons
	out := make([]SeasonRuns, 0, seasons)
	for i := 0; i < seasons; i++ {
		year := firstSeason + i
		variation := d.uniform("progression:"+strconv.Itoa(year), 0.7, 1.3)
		curve := 1 + float64(i)*0.1
		if i >= 6 {
			curve = 1.5 - float64(i-6)*0.1
		}
		runs := int(float64(base) * variation * curve)
		out = append(out, SeasonRuns{Year: year, Runs: max(runs, 0)})
	}
	return out
}
