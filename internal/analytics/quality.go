package analytics

import (
	"github.com/goserg/cricketboard/internal/domain"
)

type Grade string

const (
	GradeGood Grade = "GOOD"
	GradeOK   Grade = "OK"
	GradePoor Grade = "POOR"
)

// GradeOf grades a completeness percentage.
func GradeOf(pct float64) Grade {
	switch {
	case pct > 90:
		return GradeGood
	case pct > 50:
		return GradeOK
	}
	return GradePoor
}

type Completeness struct {
	Column  string  `json:"column"`
	Present int     `json:"present"`
	Percent float64 `json:"percent"`
	Grade   Grade   `json:"grade"`
}

// ColumnCompleteness grades every column from non-empty value counts over
// total rows. Columns keep the given order.
func ColumnCompleteness(columns []string, present map[string]int, total int) []Completeness {
	out := make([]Completeness, 0, len(columns))
	for _, col := range columns {
		pct := percent(present[col], total)
		out = append(out, Completeness{
			Column:  col,
			Present: present[col],
			Percent: pct,
			Grade:   GradeOf(pct),
		})
	}
	return out
}

// DiversityIndex is the Gini-Simpson index of the country distribution:
// 0 when every player is from one country, approaching 1 as countries spread.
func DiversityIndex(profiles []domain.Profile) float64 {
	if len(profiles) == 0 {
		return 0
	}
	counts := make(map[string]int)
	for _, p := range profiles {
		counts[p.CountryName]++
	}
	total := float64(len(profiles))
	sum := 0.0
	for _, n := range counts {
		share := float64(n) / total
		sum += share * share
	}
	return 1 - sum
}
