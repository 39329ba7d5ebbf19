package domain

// Stroke is a named batting shot category.
type Stroke string

const (
	StraightDrive Stroke = "Straight Drive"
	CoverDrive    Stroke = "Cover Drive"
	OffDrive      Stroke = "Off Drive"
	OnDrive       Stroke = "On Drive"
	Pull          Stroke = "Pull"
	Hook          Stroke = "Hook"
	Cut           Stroke = "Cut"
	SquareCut     Stroke = "Square Cut"
	LateCut       Stroke = "Late Cut"
	LegGlide      Stroke = "Leg Glide"
	Glance        Stroke = "Glance"
	Sweep         Stroke = "Sweep"
)

// Strokes lists every stroke in display order.
var Strokes = []Stroke{
	StraightDrive, CoverDrive, OffDrive, OnDrive,
	Pull, Hook, Cut, SquareCut, LateCut,
	LegGlide, Glance, Sweep,
}

// StatBundle is a synthetic career record. None of it is real data.
//
// Stroke scores are independent weighted scores and do not sum to 100.
type StatBundle struct {
	Matches        int     `json:"matches"`
	Runs           int     `json:"runs"`
	BattingAverage float64 `json:"batting_avg"`
	StrikeRate     float64 `json:"strike_rate"`
	Centuries      int     `json:"centuries"`
	Fifties        int     `json:"fifties"`

	Wickets         int     `json:"wickets"`
	BowlingAverage  float64 `json:"bowling_avg"`
	EconomyRate     float64 `json:"economy_rate"`
	FiveWicketHauls int     `json:"five_wickets"`

	Catches   int `json:"catches"`
	Stumpings int `json:"stumpings"`

	Strokes map[Stroke]int `json:"batting_strokes"`
}

type StrokeScore struct {
	Stroke Stroke `json:"stroke"`
	Score  int    `json:"score"`
}

// PlayerStats pairs a profile with its synthetic bundle.
type PlayerStats struct {
	Profile Profile    `json:"profile"`
	Stats   StatBundle `json:"stats"`
}
