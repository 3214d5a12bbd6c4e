package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/transmog/internal/model"
)

// DB wraps a pgx connection pool for character and item persistence.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Pool returns the underlying pgx pool.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

// CharacterRow is the persisted character state.
type CharacterRow struct {
	ID    int64
	Name  string
	Level int32
	Money int64
}

// GetCharacter retrieves a character by id.
// Returns nil, nil if the character does not exist.
func (d *DB) GetCharacter(ctx context.Context, id int64) (*CharacterRow, error) {
	var row CharacterRow
	err := d.pool.QueryRow(ctx,
		`SELECT id, name, level, money FROM characters WHERE id = $1`, id,
	).Scan(&row.ID, &row.Name, &row.Level, &row.Money)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying character %d: %w", id, err)
	}
	return &row, nil
}

// CreateCharacter inserts a new character.
func (d *DB) CreateCharacter(ctx context.Context, id int64, name string, level int32, money int64) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO characters (id, name, level, money) VALUES ($1, $2, $3, $4)`,
		id, name, level, money,
	)
	if err != nil {
		return fmt.Errorf("creating character %q: %w", name, err)
	}
	return nil
}

// DeleteCharacter removes a character; owned items go with it (FK cascade).
func (d *DB) DeleteCharacter(ctx context.Context, id int64) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting character %d: %w", id, err)
	}
	return nil
}

// UpdateCharacterMoney stores the character's copper balance.
func (d *DB) UpdateCharacterMoney(ctx context.Context, id int64, money int64) error {
	_, err := d.pool.Exec(ctx,
		`UPDATE characters SET money = $1 WHERE id = $2`, money, id,
	)
	if err != nil {
		return fmt.Errorf("updating money for character %d: %w", id, err)
	}
	return nil
}

// SaveItem upserts an item instance row.
func (d *DB) SaveItem(ctx context.Context, item *model.Item) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO items (guid, owner_id, entry, count, slot, bound)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (guid) DO UPDATE
		 SET owner_id = EXCLUDED.owner_id,
		     entry    = EXCLUDED.entry,
		     count    = EXCLUDED.count,
		     slot     = EXCLUDED.slot,
		     bound    = EXCLUDED.bound`,
		int64(item.GUID()), item.OwnerID(), item.Entry(), item.Count(), int32(item.Slot()), item.IsBound(),
	)
	if err != nil {
		return fmt.Errorf("saving item %d: %w", item.GUID(), err)
	}
	return nil
}

// DeleteItem removes an item instance row.
func (d *DB) DeleteItem(ctx context.Context, guid uint32) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM items WHERE guid = $1`, int64(guid))
	if err != nil {
		return fmt.Errorf("deleting item %d: %w", guid, err)
	}
	return nil
}
