package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
)

type playerTableModel struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Type      string         `db:"type"`
	BasePrice int64          `db:"base_price"`
	Rating    int            `db:"rating"`
	Status    string         `db:"status"`
	SoldPrice sql.NullInt64  `db:"sold_price"`
	TeamID    sql.NullString `db:"team_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		Name:      m.Name,
		Type:      player.Type(m.Type),
		BasePrice: m.BasePrice,
		Rating:    m.Rating,
		Status:    player.Status(m.Status),
		SoldPrice: nullInt64ToInt64(m.SoldPrice),
		TeamID:    nullStringToString(m.TeamID),
	}
}

func playerArgs(item player.Player) map[string]any {
	return map[string]any{
		"id":         item.ID,
		"name":       item.Name,
		"type":       string(item.Type),
		"base_price": item.BasePrice,
		"rating":     item.Rating,
		"status":     string(item.Status),
		"sold_price": int64ToNullInt64(item.SoldPrice),
		"team_id":    stringToNullString(item.TeamID),
	}
}
