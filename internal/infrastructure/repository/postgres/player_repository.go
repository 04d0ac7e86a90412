package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const insertPlayerQuery = `
INSERT INTO players (id, name, type, base_price, rating, status, sold_price, team_id)
VALUES (:id, :name, :type, :base_price, :rating, :status, :sold_price, :team_id)`

func (r *PlayerRepository) Insert(ctx context.Context, item player.Player) error {
	if _, err := sqlx.NamedExecContext(ctx, r.db, insertPlayerQuery, playerArgs(item)); err != nil {
		return fmt.Errorf("insert player: %w", err)
	}

	return nil
}

// InsertBatch writes the whole batch inside one transaction so a bulk import
// either lands completely or not at all.
func (r *PlayerRepository) InsertBatch(ctx context.Context, items []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for player batch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		if _, err := sqlx.NamedExecContext(ctx, tx, insertPlayerQuery, playerArgs(item)); err != nil {
			return fmt.Errorf("insert player %s in batch: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player batch: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	const query = `
UPDATE players
SET name = :name,
    type = :type,
    base_price = :base_price,
    rating = :rating,
    status = :status,
    sold_price = :sold_price,
    team_id = :team_id,
    updated_at = NOW()
WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.db, query, playerArgs(item))
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update player rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update player: no row for id=%s", item.ID)
	}

	return nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	const query = `
SELECT id, name, type, base_price, rating, status, sold_price, team_id, created_at, updated_at
FROM players
ORDER BY created_at, id`

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}
