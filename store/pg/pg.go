// Package pg keeps column preferences in Postgres so they follow a user
// across machines.
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"datagrid/visibility"
)

const createPrefs = `
	CREATE TABLE IF NOT EXISTS column_prefs (
		table_id   TEXT PRIMARY KEY,
		visible    JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Pg is a Store over a pgx pool.
type Pg struct {
	pool *pgxpool.Pool
	ctx  context.Context
}

// New connects to url and ensures the prefs table exists.
// ctx bounds every later query.
func New(ctx context.Context, url string) (pg *Pg, err error) {

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		err = errors.Wrapf(err, "failed to connect to postgres")
		return
	}

	_, err = pool.Exec(ctx, createPrefs)
	if err != nil {
		pool.Close()
		err = errors.Wrapf(err, "failed to create column prefs table")
		return
	}

	pg = &Pg{
		pool: pool,
		ctx:  ctx,
	}
	return
}

func (pg *Pg) Close() {
	pg.pool.Close()
}

// Get returns the record for id.
func (pg *Pg) Get(id string) (data []byte, err error) {

	var visible string
	err = pg.pool.QueryRow(pg.ctx,
		"SELECT visible::text FROM column_prefs WHERE table_id = $1", id).Scan(&visible)
	if errors.Is(err, pgx.ErrNoRows) {
		err = visibility.ErrNotFound
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to query column prefs")
		return
	}

	data = []byte(visible)
	return
}

// Set replaces the record for id. Data that is not valid JSON is rejected by Postgres.
func (pg *Pg) Set(id string, data []byte) (err error) {

	_, err = pg.pool.Exec(pg.ctx, `
		INSERT INTO column_prefs (table_id, visible) VALUES ($1, $2::jsonb)
		ON CONFLICT (table_id) DO UPDATE SET visible = EXCLUDED.visible, updated_at = now()
	`, id, string(data))
	err = errors.Wrapf(err, "failed to write column prefs")
	return
}

// Clear removes the record for id.
func (pg *Pg) Clear(id string) (err error) {

	_, err = pg.pool.Exec(pg.ctx, "DELETE FROM column_prefs WHERE table_id = $1", id)
	err = errors.Wrapf(err, "failed to clear column prefs")
	return
}
