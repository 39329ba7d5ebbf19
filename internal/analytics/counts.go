// Package analytics aggregates loaded profiles and their synthetic stats into
// the tables the dashboard shows.
package analytics

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/goserg/cricketboard/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

var ErrUnknownField = errors.New("unknown field")

// Field is a categorical profile attribute that can be counted.
type Field string

const (
	FieldCountry   Field = "country"
	FieldContinent Field = "continent"
	FieldBatting   Field = "batting"
	FieldBowling   Field = "bowling"
	FieldPosition  Field = "position"
	FieldGender    Field = "gender"
)

var fields = []Field{FieldCountry, FieldContinent, FieldBatting, FieldBowling, FieldPosition, FieldGender}

func ParseField(s string) (Field, error) {
	for _, f := range fields {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
}

// Value returns the attribute of p, empty values count as Unknown.
func (f Field) Value(p domain.Profile) string {
	var v string
	switch f {
	case FieldCountry:
		v = p.CountryName
	case FieldContinent:
		v = p.ContinentName
	case FieldBatting:
		v = p.BattingStyle
	case FieldBowling:
		v = p.BowlingStyle
	case FieldPosition:
		v = p.Position
	case FieldGender:
		return p.Gender.String()
	}
	if v == "" {
		return domain.Unknown
	}
	return v
}

type Count struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ValueCounts counts profiles per value, most frequent first. Equal counts are
// ordered by value. top <= 0 returns every value.
func ValueCounts(profiles []domain.Profile, field Field, top int) []Count {
	counts := make(map[string]int)
	for _, p := range profiles {
		counts[field.Value(p)]++
	}
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Count: n, Percent: percent(n, len(profiles))})
	}
	sortCounts(out)
	if top > 0 && top < len(out) {
		out = out[:top]
	}
	return out
}

func sortCounts(c []Count) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Count != c[j].Count {
			return c[i].Count > c[j].Count
		}
		return c[i].Value < c[j].Value
	})
}

// Distinct returns the number of different values of field.
func Distinct(profiles []domain.Profile, field Field) int {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, p := range profiles {
		set.Add(field.Value(p))
	}
	return set.Cardinality()
}

type Crosstab struct {
	Rows       []string    `json:"rows"`
	Cols       []string    `json:"cols"`
	Counts     [][]int     `json:"counts"`
	RowPercent [][]float64 `json:"row_percent"`
}

// CrossTab builds the contingency table of two fields. Rows and columns are
// sorted by value.
func CrossTab(profiles []domain.Profile, rows, cols Field) Crosstab {
	rowSet := mapset.NewThreadUnsafeSet[string]()
	colSet := mapset.NewThreadUnsafeSet[string]()
	for _, p := range profiles {
		rowSet.Add(rows.Value(p))
		colSet.Add(cols.Value(p))
	}
	t := Crosstab{
		Rows: sorted(rowSet),
		Cols: sorted(colSet),
	}
	rowIdx := indexOf(t.Rows)
	colIdx := indexOf(t.Cols)
	t.Counts = make([][]int, len(t.Rows))
	for i := range t.Counts {
		t.Counts[i] = make([]int, len(t.Cols))
	}
	for _, p := range profiles {
		t.Counts[rowIdx[rows.Value(p)]][colIdx[cols.Value(p)]]++
	}
	t.RowPercent = make([][]float64, len(t.Rows))
	for i, row := range t.Counts {
		total := 0
		for _, n := range row {
			total += n
		}
		t.RowPercent[i] = make([]float64, len(row))
		for j, n := range row {
			t.RowPercent[i][j] = percent(n, total)
		}
	}
	return t
}

func sorted(set mapset.Set[string]) []string {
	out := set.ToSlice()
	sort.Strings(out)
	return out
}

func indexOf(values []string) map[string]int {
	idx := make(map[string]int, len(values))
	for i, v := range values {
		idx[v] = i
	}
	return idx
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(n) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
