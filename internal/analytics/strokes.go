package analytics

import (
	"sort"

	"github.com/goserg/cricketboard/internal/domain"
)

type StrokeUsage struct {
	Stroke domain.Stroke `json:"stroke"`
	Avg    float64       `json:"avg"`
	Min    int           `json:"min"`
	Max    int           `json:"max"`
}

type StrokeReport struct {
	Players   int           `json:"players"`
	Usage     []StrokeUsage `json:"usage"`
	Signature []StrokeUsage `json:"signature"`
}

const signatureShots = 3

// Strokes aggregates stroke scores over stats. Usage is ordered by average,
// highest first, and the first three entries are the signature shots.
func Strokes(stats []domain.PlayerStats) StrokeReport {
	r := StrokeReport{Players: len(stats), Usage: make([]StrokeUsage, 0, len(domain.Strokes))}
	if len(stats) == 0 {
		return r
	}
	for _, stroke := range domain.Strokes {
		u := StrokeUsage{Stroke: stroke, Min: stats[0].Stats.Strokes[stroke], Max: stats[0].Stats.Strokes[stroke]}
		sum := 0
		for _, s := range stats {
			v := s.Stats.Strokes[stroke]
			sum += v
			u.Min = min(u.Min, v)
			u.Max = max(u.Max, v)
		}
		u.Avg = round1(float64(sum) / float64(len(stats)))
		r.Usage = append(r.Usage, u)
	}
	sort.SliceStable(r.Usage, func(i, j int) bool {
		return r.Usage[i].Avg > r.Usage[j].Avg
	})
	r.Signature = r.Usage[:signatureShots]
	return r
}
