package transmog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LookRow is a durable appearance override.
type LookRow struct {
	ItemGUID  uint32
	OwnerID   int64
	FakeEntry int32
}

// PresetRow is a durable preset with its encoded slot blob.
type PresetRow struct {
	OwnerID  int64
	PresetID int32
	Name     string
	SlotData string
}

// Repository defines the persistence interface for appearance overrides
// and presets.
type Repository interface {
	// UpsertLook writes an override row, replacing any previous one for
	// the same item.
	UpsertLook(ctx context.Context, row LookRow) error

	// DeleteLook removes an override row. No-op if absent.
	DeleteLook(ctx context.Context, itemGUID uint32) error

	// LooksByOwner loads all override rows of a character.
	LooksByOwner(ctx context.Context, ownerID int64) ([]LookRow, error)

	// DeleteLooksByOwner removes all override rows of a character.
	DeleteLooksByOwner(ctx context.Context, ownerID int64) error

	// SavePreset writes a preset row (upsert on owner+id).
	SavePreset(ctx context.Context, row PresetRow) error

	// DeletePreset removes one preset row. No-op if absent.
	DeletePreset(ctx context.Context, ownerID int64, presetID int32) error

	// DeletePresetsByOwner removes all preset rows of a character.
	DeletePresetsByOwner(ctx context.Context, ownerID int64) error

	// PresetsByOwner loads all preset rows of a character.
	PresetsByOwner(ctx context.Context, ownerID int64) ([]PresetRow, error)

	// SweepOrphanLooks deletes override rows whose item no longer exists.
	// Returns the number of rows deleted.
	SweepOrphanLooks(ctx context.Context) (int64, error)

	// SweepOrphanPresets deletes preset rows whose character no longer
	// exists. Returns the number of rows deleted.
	SweepOrphanPresets(ctx context.Context) (int64, error)
}

// PgRepository implements Repository using PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a new PostgreSQL-backed repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

func (r *PgRepository) UpsertLook(ctx context.Context, row LookRow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO character_item_looks (item_guid, owner_id, fake_entry)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_guid) DO UPDATE SET
			owner_id   = EXCLUDED.owner_id,
			fake_entry = EXCLUDED.fake_entry`,
		int64(row.ItemGUID), row.OwnerID, row.FakeEntry,
	)
	if err != nil {
		return fmt.Errorf("upsert look for item %d: %w", row.ItemGUID, err)
	}
	return nil
}

func (r *PgRepository) DeleteLook(ctx context.Context, itemGUID uint32) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM character_item_looks WHERE item_guid = $1`, int64(itemGUID),
	)
	if err != nil {
		return fmt.Errorf("delete look for item %d: %w", itemGUID, err)
	}
	return nil
}

func (r *PgRepository) LooksByOwner(ctx context.Context, ownerID int64) ([]LookRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT item_guid, owner_id, fake_entry
		FROM character_item_looks
		WHERE owner_id = $1`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query looks for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	var out []LookRow
	for rows.Next() {
		var guid int64
		var row LookRow
		if err := rows.Scan(&guid, &row.OwnerID, &row.FakeEntry); err != nil {
			return nil, fmt.Errorf("scan look row: %w", err)
		}
		row.ItemGUID = uint32(guid)
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate look rows: %w", err)
	}
	return out, nil
}

func (r *PgRepository) DeleteLooksByOwner(ctx context.Context, ownerID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM character_item_looks WHERE owner_id = $1`, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete looks for owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *PgRepository) SavePreset(ctx context.Context, row PresetRow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO character_look_presets (owner_id, preset_id, name, slot_data)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, preset_id) DO UPDATE SET
			name      = EXCLUDED.name,
			slot_data = EXCLUDED.slot_data`,
		row.OwnerID, row.PresetID, row.Name, row.SlotData,
	)
	if err != nil {
		return fmt.Errorf("save preset %d for owner %d: %w", row.PresetID, row.OwnerID, err)
	}
	return nil
}

func (r *PgRepository) DeletePreset(ctx context.Context, ownerID int64, presetID int32) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM character_look_presets WHERE owner_id = $1 AND preset_id = $2`,
		ownerID, presetID,
	)
	if err != nil {
		return fmt.Errorf("delete preset %d for owner %d: %w", presetID, ownerID, err)
	}
	return nil
}

func (r *PgRepository) DeletePresetsByOwner(ctx context.Context, ownerID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM character_look_presets WHERE owner_id = $1`, ownerID,
	)
	if err != nil {
		return fmt.Errorf("delete presets for owner %d: %w", ownerID, err)
	}
	return nil
}

func (r *PgRepository) PresetsByOwner(ctx context.Context, ownerID int64) ([]PresetRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT owner_id, preset_id, name, slot_data
		FROM character_look_presets
		WHERE owner_id = $1
		ORDER BY preset_id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query presets for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	var out []PresetRow
	for rows.Next() {
		var row PresetRow
		if err := rows.Scan(&row.OwnerID, &row.PresetID, &row.Name, &row.SlotData); err != nil {
			return nil, fmt.Errorf("scan preset row: %w", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preset rows: %w", err)
	}
	return out, nil
}

func (r *PgRepository) SweepOrphanLooks(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM character_item_looks
		WHERE NOT EXISTS (
			SELECT 1 FROM items WHERE items.guid = character_item_looks.item_guid
		)`)
	if err != nil {
		return 0, fmt.Errorf("sweep orphan looks: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PgRepository) SweepOrphanPresets(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM character_look_presets
		WHERE NOT EXISTS (
			SELECT 1 FROM characters WHERE characters.id = character_look_presets.owner_id
		)`)
	if err != nil {
		return 0, fmt.Errorf("sweep orphan presets: %w", err)
	}
	return tag.RowsAffected(), nil
}
