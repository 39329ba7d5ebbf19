package profile

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/storage"

	"github.com/sirupsen/logrus"
)

var ErrLoad = errors.New("unable to load player profiles")

// Store loads the dataset once and serves the same snapshot afterwards.
// The returned slices are shared, callers must not modify them.
type Store struct {
	source storage.ProfileSource
	now    func() time.Time
	log    *logrus.Entry

	mu       sync.Mutex
	loaded   bool
	profiles []domain.Profile
	report   LoadReport
	err      error
}

type Option func(*Store)

// WithClock sets the reference clock used for ages.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(source storage.ProfileSource, l *logrus.Logger, opts ...Option) *Store {
	s := &Store{
		source: source,
		now:    time.Now,
		log:    l.WithField("from", "profile-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cached snapshot, reading the source on first use.
// A failed read is cached as well, except when ctx was cancelled.
func (s *Store) Load(ctx context.Context) ([]domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.profiles, s.err
	}

	rows, err := s.source.ReadRows(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return []domain.Profile{}, ctx.Err()
		}
		s.log.WithError(err).Error("profile load failed")
		s.loaded = true
		s.profiles = []domain.Profile{}
		s.report = LoadReport{LoadedAt: s.now()}
		s.err = fmt.Errorf("%w: %w", ErrLoad, err)
		return s.profiles, s.err
	}

	s.profiles, s.report = Normalize(rows, s.now())
	s.loaded = true
	s.log.WithFields(logrus.Fields{
		"rows":       s.report.RowsRead,
		"profiles":   s.report.Profiles,
		"duplicates": s.report.DroppedDuplicates,
		"no_name":    s.report.DroppedMissingIdentity,
		"bad_dates":  s.report.InvalidDates,
	}).Info("profiles loaded")
	return s.profiles, nil
}

// Report returns the normalization report of the cached snapshot.
func (s *Store) Report(ctx context.Context) (LoadReport, error) {
	_, err := s.Load(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report, err
}
