package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/goserg/cricketboard/internal/analytics"
	"github.com/goserg/cricketboard/internal/cache/mem"
	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/profile"
	"github.com/goserg/cricketboard/internal/storage"
	"github.com/goserg/cricketboard/internal/synth"

	"github.com/sirupsen/logrus"
)

var ErrPlayerNotFound = errors.New("player not found")

const (
	similarPlayers = 5
	cardStrokes    = 3

	DefaultStrokeSample = 10
	strokeStyles        = 5

	DefaultSimulationSize = 20
	MinSimulationSize     = 5
	MaxSimulationSize     = 50
	leaderboardSize       = 5
)

// ProfileStore is the cached dataset the service reads from.
type ProfileStore interface {
	Load(ctx context.Context) ([]domain.Profile, error)
	Report(ctx context.Context) (profile.LoadReport, error)
}

var _ ProfileStore = (*profile.Store)(nil)

type PlayerService struct {
	store ProfileStore
	index *mem.Index
	log   *logrus.Entry
}

func New(store ProfileStore, l *logrus.Logger) *PlayerService {
	return &PlayerService{
		store: store,
		index: mem.New(),
		log:   l.WithField("from", "player-service"),
	}
}

func (s *PlayerService) profiles(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !s.index.Valid() {
		s.index.Update(profiles)
	}
	return profiles, nil
}

// statsPool returns the indexed profiles with an id, in id order. Only these
// have a stat bundle, so samples are drawn from them.
func (s *PlayerService) statsPool() []domain.Profile {
	ids := s.index.IDs()
	pool := make([]domain.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.index.GetByID(id); ok {
			pool = append(pool, p)
		}
	}
	return pool
}

type Health struct {
	Status string             `json:"status"`
	Error  string             `json:"error,omitempty"`
	Report profile.LoadReport `json:"report"`
}

// Health never fails, a broken dataset is reported in the result.
func (s *PlayerService) Health(ctx context.Context) Health {
	report, err := s.store.Report(ctx)
	if err != nil {
		return Health{Status: "error", Error: err.Error(), Report: report}
	}
	return Health{Status: "ok", Report: report}
}

func (s *PlayerService) Overview(ctx context.Context) (analytics.Overview, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return analytics.Overview{}, err
	}
	return analytics.Summarize(profiles), nil
}

func (s *PlayerService) Search(ctx context.Context, f analytics.Filter) (analytics.FilterResult, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return analytics.FilterResult{}, err
	}
	return analytics.Apply(profiles, f), nil
}

// FindByName prefers exact folded name matches and falls back to a substring search.
func (s *PlayerService) FindByName(ctx context.Context, name string) (analytics.FilterResult, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return analytics.FilterResult{}, err
	}
	if exact := s.index.GetByName(name); len(exact) > 0 {
		return analytics.FilterResult{Total: len(exact), Players: exact}, nil
	}
	return analytics.Apply(profiles, analytics.Filter{Query: name}), nil
}

func (s *PlayerService) Get(ctx context.Context, id int) (domain.Profile, error) {
	if _, err := s.profiles(ctx); err != nil {
		return domain.Profile{}, err
	}
	p, ok := s.index.GetByID(id)
	if !ok {
		return domain.Profile{}, fmt.Errorf("%w: id %d", ErrPlayerNotFound, id)
	}
	return p, nil
}

func (s *PlayerService) Stats(ctx context.Context, id int) (domain.PlayerStats, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	bundle, err := synth.Generate(p)
	if err != nil {
		return domain.PlayerStats{}, err
	}
	return domain.PlayerStats{Profile: p, Stats: bundle}, nil
}

type PlayerCard struct {
	domain.PlayerStats
	TopStrokes  []domain.StrokeScore `json:"top_strokes"`
	Highlights  synth.Highlights     `json:"highlights"`
	Progression []synth.SeasonRuns   `json:"progression"`
	Similar     []domain.PlayerStats `json:"similar"`
}

func (s *PlayerService) Card(ctx context.Context, id int) (PlayerCard, error) {
	ps, err := s.Stats(ctx, id)
	if err != nil {
		return PlayerCard{}, err
	}
	profiles, err := s.profiles(ctx)
	if err != nil {
		return PlayerCard{}, err
	}
	return PlayerCard{
		PlayerStats: ps,
		TopStrokes:  synth.TopStrokes(ps.Stats, cardStrokes),
		Highlights:  synth.HighlightsFor(ps.Profile, ps.Stats),
		Progression: synth.Progression(ps.Profile, ps.Stats),
		Similar:     s.withStats(analytics.Similar(profiles, ps.Profile, similarPlayers)),
	}, nil
}

func (s *PlayerService) Distribution(ctx context.Context, field analytics.Field, top int) ([]analytics.Count, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ValueCounts(profiles, field, top), nil
}

func (s *PlayerService) CrossTab(ctx context.Context, rows, cols analytics.Field) (analytics.Crosstab, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return analytics.Crosstab{}, err
	}
	return analytics.CrossTab(profiles, rows, cols), nil
}

func (s *PlayerService) Positions(ctx context.Context) ([]analytics.PositionSummary, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.Positions(profiles), nil
}

func (s *PlayerService) Compare(ctx context.Context, countries []string) ([]analytics.GenderSplit, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.CompareCountries(profiles, countries)
}

type StrokeAnalysis struct {
	BattingStyle string                 `json:"batting_style"`
	Styles       []string               `json:"styles"`
	Report       analytics.StrokeReport `json:"report"`
}

// StrokeAnalysis samples players of one batting style and aggregates their
// stroke scores. An empty style picks the most common one.
func (s *PlayerService) StrokeAnalysis(ctx context.Context, battingStyle string, sample int, seed uint64) (StrokeAnalysis, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return StrokeAnalysis{}, err
	}
	res := StrokeAnalysis{BattingStyle: battingStyle, Styles: make([]string, 0, strokeStyles)}
	for _, c := range analytics.ValueCounts(profiles, analytics.FieldBatting, strokeStyles) {
		res.Styles = append(res.Styles, c.Value)
	}
	if res.BattingStyle == "" && len(res.Styles) > 0 {
		res.BattingStyle = res.Styles[0]
	}
	if sample <= 0 {
		sample = DefaultStrokeSample
	}
	players := analytics.Select(s.statsPool(), analytics.Filter{Batting: res.BattingStyle})
	res.Report = analytics.Strokes(s.withStats(analytics.Sample(players, sample, seed)))
	return res, nil
}

type Leaderboards struct {
	Runs    []domain.PlayerStats `json:"runs"`
	Wickets []domain.PlayerStats `json:"wickets"`
	Matches []domain.PlayerStats `json:"matches"`
}

type Simulation struct {
	Seed         uint64               `json:"seed"`
	Players      []domain.PlayerStats `json:"players"`
	Leaderboards Leaderboards         `json:"leaderboards"`
	DreamTeam    []domain.PlayerStats `json:"dream_team"`
}

// ClampSimulationSize maps a requested sample size into the supported range.
// Zero means the default.
func ClampSimulationSize(size int) int {
	if size == 0 {
		return DefaultSimulationSize
	}
	return min(max(size, MinSimulationSize), MaxSimulationSize)
}

func (s *PlayerService) Simulate(ctx context.Context, size int, seed uint64) (Simulation, error) {
	if _, err := s.profiles(ctx); err != nil {
		return Simulation{}, err
	}
	stats := s.withStats(analytics.Sample(s.statsPool(), ClampSimulationSize(size), seed))
	return Simulation{
		Seed:    seed,
		Players: stats,
		Leaderboards: Leaderboards{
			Runs:    analytics.Leaderboard(stats, analytics.MetricRuns, leaderboardSize),
			Wickets: analytics.Leaderboard(stats, analytics.MetricWickets, leaderboardSize),
			Matches: analytics.Leaderboard(stats, analytics.MetricMatches, leaderboardSize),
		},
		DreamTeam: analytics.DreamTeam(stats),
	}, nil
}

type Quality struct {
	Profiles       int                      `json:"profiles"`
	DiversityIndex float64                  `json:"diversity_index"`
	Columns        []analytics.Completeness `json:"columns"`
}

func (s *PlayerService) Quality(ctx context.Context) (Quality, error) {
	profiles, err := s.profiles(ctx)
	if err != nil {
		return Quality{}, err
	}
	report, err := s.store.Report(ctx)
	if err != nil {
		return Quality{}, err
	}
	return Quality{
		Profiles:       len(profiles),
		DiversityIndex: analytics.DiversityIndex(profiles),
		Columns:        analytics.ColumnCompleteness(storage.Columns, report.Presence, report.Profiles),
	}, nil
}

// Import copies every raw row of source into archive, replacing its contents.
func (s *PlayerService) Import(ctx context.Context, source storage.ProfileSource, archive storage.ProfileArchive) (int, error) {
	rows, err := source.ReadRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", profile.ErrLoad, err)
	}
	if err := archive.ReplaceRows(ctx, rows); err != nil {
		return 0, err
	}
	s.log.WithField("rows", len(rows)).Info("profiles imported")
	return len(rows), nil
}
