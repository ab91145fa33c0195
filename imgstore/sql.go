package imgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/jmoiron/sqlx"
	"go.brendoncarroll.net/tai64"

	"myceliumweb.org/tagrt"
	"myceliumweb.org/tagrt/heapimg"
	"myceliumweb.org/tagrt/internal/cadata"
	"myceliumweb.org/tagrt/internal/dbutil"
)

var _ Store = &SQL{}

// SetupDB creates the tables used by SQL.
func SetupDB(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS images (
		name TEXT NOT NULL,
		id BLOB NOT NULL,
		data BLOB NOT NULL,
		created_at BLOB NOT NULL,

		PRIMARY KEY(name)
	) WITHOUT ROWID, STRICT;`)
	return err
}

// SQL is a Store in a sqlite database.
type SQL struct {
	db *sqlx.DB
}

// NewSQL returns a store using db, which must have been setup with SetupDB.
func NewSQL(db *sqlx.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) Put(ctx context.Context, name string, img *heapimg.Image) (Entry, error) {
	ent, data, err := encode(name, img)
	if err != nil {
		return Entry{}, err
	}
	// timestamps are stored as CBOR
	created, err := cbor.Marshal(ent.CreatedAt)
	if err != nil {
		return Entry{}, err
	}
	if err := dbutil.DoTx(ctx, s.db, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO images (name, id, data, created_at) VALUES (?, ?, ?, ?)
			ON CONFLICT (name) DO UPDATE SET id = excluded.id, data = excluded.data, created_at = excluded.created_at`,
			name, ent.ID[:], data, created)
		return err
	}); err != nil {
		return Entry{}, err
	}
	return ent, nil
}

func (s *SQL) Get(ctx context.Context, name string) (*heapimg.Image, error) {
	var row struct {
		ID   cadata.ID `db:"id"`
		Data []byte    `db:"data"`
	}
	if err := s.db.GetContext(ctx, &row, `SELECT id, data FROM images WHERE name = ?`, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound{Name: name}
		}
		return nil, err
	}
	if err := cadata.Check(tagrt.Hash, row.ID, row.Data); err != nil {
		return nil, fmt.Errorf("image %q: %w", name, err)
	}
	return heapimg.Unmarshal(row.Data)
}

func (s *SQL) List(ctx context.Context) ([]Entry, error) {
	var rows []struct {
		Name      string    `db:"name"`
		ID        cadata.ID `db:"id"`
		CreatedAt []byte    `db:"created_at"`
	}
	if err := s.db.SelectContext(ctx, &rows, `SELECT name, id, created_at FROM images ORDER BY name`); err != nil {
		return nil, err
	}
	ret := make([]Entry, 0, len(rows))
	for _, row := range rows {
		var ts tai64.TAI64N
		if err := cbor.Unmarshal(row.CreatedAt, &ts); err != nil {
			return nil, err
		}
		ret = append(ret, Entry{Name: row.Name, ID: row.ID, CreatedAt: ts})
	}
	return ret, nil
}

func (s *SQL) Delete(ctx context.Context, name string) error {
	n, err := dbutil.DoTx1(ctx, s.db, func(tx *sqlx.Tx) (int64, error) {
		res, err := tx.ExecContext(ctx, `DELETE FROM images WHERE name = ?`, name)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound{Name: name}
	}
	return nil
}
