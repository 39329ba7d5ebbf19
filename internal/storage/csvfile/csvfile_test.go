package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goserg/cricketboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	data := "ID, fullname ,country_name,dateofbirth,battingstyle,extra\n" +
		"42,Test Player,India,01-01-1990,Right hand bat,x\n" +
		"43,  Other Player ,England,,,\n" +
		"44,Short Row\n"
	rows, err := Read(context.Background(), strings.NewReader(data), ',')
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, storage.Row{
		ID:           "42",
		FullName:     "Test Player",
		CountryName:  "India",
		DateOfBirth:  "01-01-1990",
		BattingStyle: "Right hand bat",
	}, rows[0])
	assert.Equal(t, "Other Player", rows[1].FullName)
	assert.Equal(t, "", rows[1].DateOfBirth)
	assert.Equal(t, "Short Row", rows[2].FullName)
	assert.Equal(t, "", rows[2].CountryName)
}

func TestReadSeparator(t *testing.T) {
	data := "fullname;country_name\nA;B\n"
	rows, err := Read(context.Background(), strings.NewReader(data), ';')
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].CountryName)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty", data: ""},
		{name: "no country column", data: "fullname,id\nA,1\n"},
		{name: "broken quoting", data: "fullname,country_name\nA,\"B\"x\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(context.Background(), strings.NewReader(tt.data), ',')
			assert.Error(t, err)
		})
	}
}

func TestSourceMissingFile(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "missing.csv"), 0)
	_, err := src.ReadRows(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSourceReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte("fullname,country_name\nA,B\n"), 0o644))
	rows, err := New(path, 0).ReadRows(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
