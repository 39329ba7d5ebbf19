package profile

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	rows  []storage.Row
	err   error
	calls int
}

func (f *fakeSource) ReadRows(ctx context.Context) ([]storage.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]storage.Row, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

var referenceDate = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return referenceDate
}

func testPlayerRow() storage.Row {
	return storage.Row{
		ID:           "42",
		FullName:     "Test Player",
		CountryName:  "India",
		DateOfBirth:  "01-01-1990",
		BattingStyle: "Right hand bat",
		Position:     "Batsman",
		Gender:       "m",
	}
}

func TestStoreLoadScenario(t *testing.T) {
	src := &fakeSource{rows: []storage.Row{testPlayerRow()}}
	store := NewStore(src, quietLogger(), WithClock(fixedClock))

	profiles, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	p := profiles[0]
	assert.Equal(t, 42, p.ID)
	assert.True(t, p.HasID)
	assert.Equal(t, "Right hand bat", p.BattingStyle)
	assert.Equal(t, domain.Unknown, p.BowlingStyle)
	assert.Equal(t, domain.GenderMale, p.Gender)
	assert.True(t, p.Roles.Bats())
	assert.False(t, p.Roles.Bowls())
	require.True(t, p.HasAge())

	want := referenceDate.Sub(time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)).Hours() / 24 / 365.25
	assert.InDelta(t, want, p.Age, 0.06)
}

func TestStoreMissingDate(t *testing.T) {
	row := testPlayerRow()
	row.DateOfBirth = ""
	bad := testPlayerRow()
	bad.FullName = "Bad Date"
	bad.DateOfBirth = "1990/01/01"
	src := &fakeSource{rows: []storage.Row{row, bad}}

	store := NewStore(src, quietLogger(), WithClock(fixedClock))
	profiles, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.False(t, p.HasAge(), p.FullName)
		assert.Zero(t, p.Age, p.FullName)
		assert.Nil(t, p.DateOfBirth, p.FullName)
	}

	report, err := store.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.MissingDates)
	assert.Equal(t, 1, report.InvalidDates)
}

func TestStoreDropsMissingIdentity(t *testing.T) {
	noName := testPlayerRow()
	noName.FullName = "   "
	noCountry := testPlayerRow()
	noCountry.FullName = "Someone"
	noCountry.CountryName = ""
	src := &fakeSource{rows: []storage.Row{noName, testPlayerRow(), noCountry}}

	profiles, err := NewStore(src, quietLogger()).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Test Player", profiles[0].FullName)
}

func TestStoreDeduplicates(t *testing.T) {
	first := testPlayerRow()
	dup := testPlayerRow()
	dup.ID = "43"
	otherCountry := testPlayerRow()
	otherCountry.ID = "44"
	otherCountry.CountryName = "England"
	src := &fakeSource{rows: []storage.Row{first, dup, otherCountry}}

	store := NewStore(src, quietLogger())
	profiles, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, 42, profiles[0].ID)
	assert.Equal(t, 44, profiles[1].ID)

	report, err := store.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.DroppedDuplicates)
	assert.Equal(t, 3, report.RowsRead)
	assert.Equal(t, 2, report.Profiles)
}

func TestStoreLoadIdempotent(t *testing.T) {
	rows := []storage.Row{testPlayerRow(), {FullName: "B", CountryName: "Kenya", ID: "7"}}
	first, err := NewStore(&fakeSource{rows: rows}, quietLogger(), WithClock(fixedClock)).Load(context.Background())
	require.NoError(t, err)
	second, err := NewStore(&fakeSource{rows: rows}, quietLogger(), WithClock(fixedClock)).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStoreCachesSnapshot(t *testing.T) {
	src := &fakeSource{rows: []storage.Row{testPlayerRow()}}
	store := NewStore(src, quietLogger())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Load(context.Background())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, src.calls)
}

func TestStoreLoadFailure(t *testing.T) {
	src := &fakeSource{err: errors.New("disk on fire")}
	store := NewStore(src, quietLogger())

	profiles, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)

	_, err = store.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)
	assert.Equal(t, 1, src.calls)
}

func TestStoreCancelledLoadIsRetried(t *testing.T) {
	src := &fakeSource{rows: []storage.Row{testPlayerRow()}}
	store := NewStore(src, quietLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	profiles, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
