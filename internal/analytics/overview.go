package analytics

import (
	"errors"
	"sort"

	"github.com/goserg/cricketboard/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
)

var ErrTooFewCountries = errors.New("at least two countries are needed")

type AgeSummary struct {
	Known  int     `json:"known"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

type Overview struct {
	Players    int        `json:"players"`
	Countries  int        `json:"countries"`
	Continents int        `json:"continents"`
	Ages       AgeSummary `json:"ages"`
	Genders    []Count    `json:"genders"`
}

func Summarize(profiles []domain.Profile) Overview {
	return Overview{
		Players:    len(profiles),
		Countries:  Distinct(profiles, FieldCountry),
		Continents: Distinct(profiles, FieldContinent),
		Ages:       SummarizeAges(profiles),
		Genders:    ValueCounts(profiles, FieldGender, 0),
	}
}

// SummarizeAges only looks at profiles with a known birth date.
func SummarizeAges(profiles []domain.Profile) AgeSummary {
	ages := make([]float64, 0, len(profiles))
	for _, p := range profiles {
		if p.HasAge() {
			ages = append(ages, p.Age)
		}
	}
	if len(ages) == 0 {
		return AgeSummary{}
	}
	sort.Float64s(ages)
	sum := 0.0
	for _, a := range ages {
		sum += a
	}
	median := ages[len(ages)/2]
	if len(ages)%2 == 0 {
		median = (ages[len(ages)/2-1] + median) / 2
	}
	return AgeSummary{
		Known:  len(ages),
		Min:    ages[0],
		Max:    ages[len(ages)-1],
		Mean:   round1(sum / float64(len(ages))),
		Median: round1(median),
	}
}

type PositionSummary struct {
	Position  string  `json:"position"`
	Players   int     `json:"players"`
	MeanAge   float64 `json:"mean_age"`
	Countries int     `json:"countries"`
}

// Positions groups profiles by position, largest group first.
func Positions(profiles []domain.Profile) []PositionSummary {
	groups := make(map[string][]domain.Profile)
	for _, p := range profiles {
		pos := FieldPosition.Value(p)
		groups[pos] = append(groups[pos], p)
	}
	out := make([]PositionSummary, 0, len(groups))
	for pos, group := range groups {
		out = append(out, PositionSummary{
			Position:  pos,
			Players:   len(group),
			MeanAge:   SummarizeAges(group).Mean,
			Countries: Distinct(group, FieldCountry),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Players != out[j].Players {
			return out[i].Players > out[j].Players
		}
		return out[i].Position < out[j].Position
	})
	return out
}

type GenderSplit struct {
	Country string `json:"country"`
	Players int    `json:"players"`
	Male    int    `json:"male"`
	Female  int    `json:"female"`
	Unknown int    `json:"unknown"`
}

// CompareCountries counts players per gender for each requested country, in
// the order given. Duplicate names are ignored.
func CompareCountries(profiles []domain.Profile, countries []string) ([]GenderSplit, error) {
	wanted := mapset.NewThreadUnsafeSet[string]()
	order := make([]string, 0, len(countries))
	for _, c := range countries {
		if c != "" && wanted.Add(c) {
			order = append(order, c)
		}
	}
	if wanted.Cardinality() < 2 {
		return nil, ErrTooFewCountries
	}
	splits := make(map[string]*GenderSplit, len(order))
	for _, c := range order {
		splits[c] = &GenderSplit{Country: c}
	}
	for _, p := range profiles {
		s, ok := splits[p.CountryName]
		if !ok {
			continue
		}
		s.Players++
		switch p.Gender {
		case domain.GenderMale:
			s.Male++
		case domain.GenderFemale:
			s.Female++
		default:
			s.Unknown++
		}
	}
	out := make([]GenderSplit, 0, len(order))
	for _, c := range order {
		out = append(out, *splits[c])
	}
	return out, nil
}
