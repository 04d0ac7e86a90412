package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

type teamTableModel struct {
	ID             string        `db:"id"`
	Name           string        `db:"name"`
	PurseGiven     int64         `db:"purse_given"`
	PurseRemaining int64         `db:"purse_remaining"`
	TotalPurchase  sql.NullInt64 `db:"total_purchase"`
	TotalRating    sql.NullInt64 `db:"total_rating"`
	CreatedAt      time.Time     `db:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at"`
}

// toDomain maps the flat record schema onto the domain model; absent
// numeric aggregates default to zero.
func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             m.ID,
		Name:           m.Name,
		PurseGiven:     m.PurseGiven,
		PurseRemaining: m.PurseRemaining,
		TotalPurchase:  nullInt64ToInt64(m.TotalPurchase),
		TotalRating:    nullInt64ToInt64(m.TotalRating),
	}
}
