package player

import "fmt"

// Type represents the player categories used to organize the auction pool.
type Type string

const (
	TypeBowler       Type = "Bowler"
	TypeBatsman      Type = "Batsman"
	TypeAllRounder   Type = "All-rounder"
	TypeWicketkeeper Type = "Wicketkeeper"
)

var AllTypes = map[Type]struct{}{
	TypeBowler:       {},
	TypeBatsman:      {},
	TypeAllRounder:   {},
	TypeWicketkeeper: {},
}

// Status is the two-state sale lifecycle of a player.
type Status string

const (
	StatusUnsold Status = "unsold"
	StatusSold   Status = "sold"
)

// Ratings are on a 1-10 scale.
const (
	MinRating = 1
	MaxRating = 10
)

// Player is an athlete in the auction pool. SoldPrice and TeamID are set
// exactly when Status is sold.
type Player struct {
	ID        string
	Name      string
	Type      Type
	BasePrice int64
	Rating    int
	Status    Status
	SoldPrice int64
	TeamID    string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllTypes[p.Type]; !ok {
		return fmt.Errorf("invalid player type: %s", p.Type)
	}
	if p.BasePrice <= 0 {
		return fmt.Errorf("player base price must be greater than zero")
	}
	if p.Rating < MinRating || p.Rating > MaxRating {
		return fmt.Errorf("player rating must be between %d and %d", MinRating, MaxRating)
	}

	switch p.Status {
	case StatusUnsold:
		if p.SoldPrice != 0 || p.TeamID != "" {
			return fmt.Errorf("unsold player cannot carry a sold price or team")
		}
	case StatusSold:
		if p.SoldPrice <= 0 {
			return fmt.Errorf("sold player must carry a positive sold price")
		}
		if p.TeamID == "" {
			return fmt.Errorf("sold player must reference a team")
		}
	default:
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}

func (p Player) Sold() bool {
	return p.Status == StatusSold
}
