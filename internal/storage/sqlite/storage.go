package sqlite

import (
	"context"
	"database/sql"

	"github.com/goserg/cricketboard/gen/model"
	"github.com/goserg/cricketboard/gen/table"
	"github.com/goserg/cricketboard/internal/migrate"
	"github.com/goserg/cricketboard/internal/storage"

	"github.com/sirupsen/logrus"
)

// insertBatch keeps a single INSERT below SQLite's bound variable limit.
const insertBatch = 500

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.ProfileArchive = (*Storage)(nil)

func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "profile-storage",
	})
	db, err := storage.OpenSQLite(fileName)
	if err != nil {
		return nil, err
	}
	err = migrate.UpProfilesDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("file", fileName).Info("profile storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) ReadRows(ctx context.Context) ([]storage.Row, error) {
	var profiles []model.Profiles
	err := table.Profiles.
		SELECT(table.Profiles.AllColumns).
		FROM(table.Profiles).
		ORDER_BY(table.Profiles.RowNum.ASC()).
		QueryContext(ctx, s.db, &profiles)
	if err != nil {
		return nil, err
	}
	return convertRowsToStorage(profiles), nil
}

// ReplaceRows swaps the whole snapshot in one transaction, keeping the given order.
func (s *Storage) ReplaceRows(ctx context.Context, rows []storage.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = table.Profiles.
		DELETE().
		WHERE(table.Profiles.RowNum.IS_NOT_NULL()).
		ExecContext(ctx, tx)
	if err != nil {
		return err
	}
	models := convertRowsFromStorage(rows)
	for start := 0; start < len(models); start += insertBatch {
		end := start + insertBatch
		if end > len(models) {
			end = len(models)
		}
		_, err = table.Profiles.
			INSERT(table.Profiles.AllColumns).
			MODELS(models[start:end]).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.log.WithField("rows", len(rows)).Info("snapshot replaced")
	return nil
}

func convertRowsToStorage(profiles []model.Profiles) []storage.Row {
	converted := make([]storage.Row, 0, len(profiles))
	for _, p := range profiles {
		converted = append(converted, storage.Row{
			ID:            p.ID,
			FullName:      p.Fullname,
			FirstName:     p.Firstname,
			LastName:      p.Lastname,
			Gender:        p.Gender,
			CountryName:   p.CountryName,
			ContinentName: p.ContinentName,
			DateOfBirth:   p.Dateofbirth,
			BattingStyle:  p.Battingstyle,
			BowlingStyle:  p.Bowlingstyle,
			Position:      p.Position,
			ImagePath:     p.ImagePath,
		})
	}
	return converted
}

func convertRowsFromStorage(rows []storage.Row) []model.Profiles {
	converted := make([]model.Profiles, 0, len(rows))
	for i, r := range rows {
		converted = append(converted, model.Profiles{
			RowNum:        int32(i + 1),
			ID:            r.ID,
			Fullname:      r.FullName,
			Firstname:     r.FirstName,
			Lastname:      r.LastName,
			Gender:        r.Gender,
			CountryName:   r.CountryName,
			ContinentName: r.ContinentName,
			Dateofbirth:   r.DateOfBirth,
			Battingstyle:  r.BattingStyle,
			Bowlingstyle:  r.BowlingStyle,
			Position:      r.Position,
			ImagePath:     r.ImagePath,
		})
	}
	return converted
}
