package storage

import "context"

// ProfileSource yields raw dataset rows in source order.
type ProfileSource interface {
	ReadRows(ctx context.Context) ([]Row, error)
}

// ProfileArchive is a source that can also be rewritten from a fresh set of rows.
type ProfileArchive interface {
	ProfileSource
	ReplaceRows(ctx context.Context, rows []Row) error
}
