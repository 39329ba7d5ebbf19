package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goserg/cricketboard/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(logrus.New(), filepath.Join(t.TempDir(), "profiles.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestStorageEmpty(t *testing.T) {
	s := newTestStorage(t)
	rows, err := s.ReadRows(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStorageReplaceRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	first := []storage.Row{
		{ID: "1", FullName: "Old Player", CountryName: "Kenya"},
	}
	require.NoError(t, s.ReplaceRows(ctx, first))

	second := make([]storage.Row, 0, insertBatch+3)
	for i := 0; i < insertBatch+3; i++ {
		second = append(second, storage.Row{
			ID:           "x",
			FullName:     "Player",
			CountryName:  "India",
			DateOfBirth:  "01-01-1990",
			BattingStyle: "Left hand bat",
		})
	}
	second[0].FullName = "First"
	second[len(second)-1].FullName = "Last"
	require.NoError(t, s.ReplaceRows(ctx, second))

	rows, err := s.ReadRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, len(second))
	assert.Equal(t, "First", rows[0].FullName)
	assert.Equal(t, "Last", rows[len(rows)-1].FullName)
	assert.Equal(t, second[1], rows[1])
}
