// Package csvfile reads the player dataset from a delimited text file.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goserg/cricketboard/internal/normalize"
	"github.com/goserg/cricketboard/internal/storage"
)

var ErrMissingColumn = errors.New("required column is missing")

type Source struct {
	path  string
	comma rune
}

var _ storage.ProfileSource = (*Source)(nil)

// New returns a source for path. A zero separator means ','.
func New(path string, separator rune) *Source {
	if separator == 0 {
		separator = ','
	}
	return &Source{
		path:  path,
		comma: separator,
	}
}

func (s *Source) ReadRows(ctx context.Context) ([]storage.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(ctx, f, s.comma)
}

// Read parses rows from r. Unknown columns are ignored, missing optional columns read as empty.
func Read(ctx context.Context, r io.Reader, comma rune) ([]storage.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset: no header")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	columns := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		columns[i] = normalize.Header(h)
		seen[columns[i]] = true
	}
	for _, required := range []string{storage.ColFullName, storage.ColCountryName} {
		if !seen[required] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var rows []storage.Row
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var row storage.Row
		for i, value := range record {
			if i >= len(columns) {
				break
			}
			row.Set(columns[i], strings.TrimSpace(value))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
