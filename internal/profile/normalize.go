package profile

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/storage"
)

// DateLayout is the day-month-year format of the dateofbirth column.
// Single digit days and months are accepted.
const DateLayout = "2-1-2006"

const daysPerYear = 365.25

// LoadReport describes what normalization did to the raw rows.
type LoadReport struct {
	LoadedAt time.Time `json:"loaded_at"`

	RowsRead               int `json:"rows_read"`
	DroppedMissingIdentity int `json:"dropped_missing_identity"`
	DroppedDuplicates      int `json:"dropped_duplicates"`
	MissingDates           int `json:"missing_dates"`
	InvalidDates           int `json:"invalid_dates"`
	InvalidIDs             int `json:"invalid_ids"`

	// Presence counts non-empty raw values per column over the kept rows.
	Presence map[string]int `json:"presence"`
	Profiles int            `json:"profiles"`
}

type identity struct {
	fullName string
	country  string
}

// Normalize turns raw rows into profiles. now is the reference date for ages.
// Rows without a name or a country are dropped, the first row of every
// (name, country) pair wins. Bad optional values never fail the whole set.
func Normalize(rows []storage.Row, now time.Time) ([]domain.Profile, LoadReport) {
	report := LoadReport{
		LoadedAt: now,
		RowsRead: len(rows),
		Presence: make(map[string]int, len(storage.Columns)),
	}
	seen := make(map[identity]struct{}, len(rows))
	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		row = trimRow(row)
		if row.FullName == "" || row.CountryName == "" {
			report.DroppedMissingIdentity++
			continue
		}
		key := identity{fullName: row.FullName, country: row.CountryName}
		if _, ok := seen[key]; ok {
			report.DroppedDuplicates++
			continue
		}
		seen[key] = struct{}{}

		for _, col := range storage.Columns {
			if row.Get(col) != "" {
				report.Presence[col]++
			}
		}

		p := convertRow(row)
		if row.ID != "" && !p.HasID {
			report.InvalidIDs++
		}
		switch dob, ok := parseDate(row.DateOfBirth); {
		case row.DateOfBirth == "":
			report.MissingDates++
		case !ok:
			report.InvalidDates++
		default:
			p.DateOfBirth = &dob
			p.Age = AgeAt(dob, now)
		}
		profiles = append(profiles, p)
	}
	report.Profiles = len(profiles)
	return profiles, report
}

func convertRow(row storage.Row) domain.Profile {
	id, ok := parseID(row.ID)
	return domain.Profile{
		ID:            id,
		HasID:         ok,
		FullName:      row.FullName,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Gender:        domain.ParseGender(row.Gender),
		CountryName:   row.CountryName,
		ContinentName: row.ContinentName,
		BattingStyle:  orUnknown(row.BattingStyle),
		BowlingStyle:  orUnknown(row.BowlingStyle),
		Position:      row.Position,
		Roles:         domain.ParseRoles(row.Position),
		ImagePath:     row.ImagePath,
	}
}

// AgeAt returns whole elapsed days divided by 365.25, rounded to one decimal.
func AgeAt(dob time.Time, now time.Time) float64 {
	days := math.Floor(now.Sub(dob).Hours() / 24)
	return math.Round(days/daysPerYear*10) / 10
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseID accepts integers and integral floats ("42.0"), which spreadsheet exports produce.
func parseID(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if id, err := strconv.Atoi(s); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

func orUnknown(s string) string {
	if s == "" {
		return domain.Unknown
	}
	return s
}

func trimRow(r storage.Row) storage.Row {
	for _, col := range storage.Columns {
		r.Set(col, strings.TrimSpace(r.Get(col)))
	}
	return r
}
