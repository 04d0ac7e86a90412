package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Insert(ctx context.Context, item team.Team) error {
	const query = `
INSERT INTO teams (id, name, purse_given, purse_remaining, total_purchase, total_rating)
VALUES (:id, :name, :purse_given, :purse_remaining, :total_purchase, :total_rating)`

	if _, err := sqlx.NamedExecContext(ctx, r.db, query, teamArgs(item)); err != nil {
		return fmt.Errorf("insert team: %w", err)
	}

	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	const query = `
UPDATE teams
SET name = :name,
    purse_remaining = :purse_remaining,
    total_purchase = :total_purchase,
    total_rating = :total_rating,
    updated_at = NOW()
WHERE id = :id`

	result, err := sqlx.NamedExecContext(ctx, r.db, query, teamArgs(item))
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update team rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update team: no row for id=%s", item.ID)
	}

	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) error {
	const query = `DELETE FROM teams WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	return nil
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	const query = `
SELECT id, name, purse_given, purse_remaining, total_purchase, total_rating, created_at, updated_at
FROM teams
ORDER BY created_at, id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func teamArgs(item team.Team) map[string]any {
	return map[string]any{
		"id":              item.ID,
		"name":            item.Name,
		"purse_given":     item.PurseGiven,
		"purse_remaining": item.PurseRemaining,
		"total_purchase":  item.TotalPurchase,
		"total_rating":    item.TotalRating,
	}
}
