package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

// AuctionRepository records multi-entity auction mutations. Each operation
// runs inside one database transaction so the player and team rows can never
// disagree about a sale.
type AuctionRepository struct {
	db *sqlx.DB
}

func NewAuctionRepository(db *sqlx.DB) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) RecordSale(ctx context.Context, soldPlayer player.Player, buyer team.Team) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for sale: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updatePlayerQuery = `
UPDATE players
SET status = :status,
    sold_price = :sold_price,
    team_id = :team_id,
    updated_at = NOW()
WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, tx, updatePlayerQuery, playerArgs(soldPlayer))
	if err != nil {
		return fmt.Errorf("update sold player: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("update sold player rows affected: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("update sold player: no row for id=%s", soldPlayer.ID)
	}

	const updateTeamQuery = `
UPDATE teams
SET purse_remaining = :purse_remaining,
    total_purchase = :total_purchase,
    total_rating = :total_rating,
    updated_at = NOW()
WHERE id = :id`

	result, err = sqlx.NamedExecContext(ctx, tx, updateTeamQuery, teamArgs(buyer))
	if err != nil {
		return fmt.Errorf("update buying team: %w", err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("update buying team rows affected: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("update buying team: no row for id=%s", buyer.ID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit sale: %w", err)
	}

	return nil
}

func (r *AuctionRepository) RecordTeamRemoval(ctx context.Context, teamID string, unwoundPlayerIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for team removal: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const unwindQuery = `
UPDATE players
SET status = 'unsold',
    sold_price = NULL,
    team_id = NULL,
    updated_at = NOW()
WHERE team_id = $1`

	if _, err := tx.ExecContext(ctx, unwindQuery, teamID); err != nil {
		return fmt.Errorf("unwind players for team %s: %w", teamID, err)
	}

	const deleteQuery = `DELETE FROM teams WHERE id = $1`

	result, err := tx.ExecContext(ctx, deleteQuery, teamID)
	if err != nil {
		return fmt.Errorf("delete team %s: %w", teamID, err)
	}
	if affected, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("delete team rows affected: %w", err)
	} else if affected == 0 {
		return fmt.Errorf("delete team: no row for id=%s", teamID)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit team removal: %w", err)
	}

	return nil
}
