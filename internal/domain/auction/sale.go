package auction

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

var (
	ErrAlreadySold       = errors.New("player already sold")
	ErrBelowBasePrice    = errors.New("price below player base price")
	ErrInsufficientFunds = errors.New("insufficient purse remaining")
	ErrInvalidPrice      = errors.New("price must be greater than zero")
)

// Sale is one candidate hammer-down: a player going to a team at a price.
type Sale struct {
	PlayerID string
	TeamID   string
	Price    int64
}

// ValidateSale checks a candidate sale against the current state of both
// entities. The first failing rule determines the error.
func ValidateSale(p player.Player, t team.Team, price int64) error {
	if p.Sold() {
		return fmt.Errorf("%w: player=%s owner=%s", ErrAlreadySold, p.ID, p.TeamID)
	}
	if price < p.BasePrice {
		return fmt.Errorf("%w: player=%s base=%d offered=%d", ErrBelowBasePrice, p.ID, p.BasePrice, price)
	}
	if price > t.PurseRemaining {
		return fmt.Errorf("%w: team=%s remaining=%d offered=%d", ErrInsufficientFunds, t.ID, t.PurseRemaining, price)
	}
	if price <= 0 {
		return fmt.Errorf("%w: offered=%d", ErrInvalidPrice, price)
	}

	return nil
}

// ApplySale returns updated copies of the player and team after the sale.
// Callers validate first; ApplySale performs only the state arithmetic.
func ApplySale(p player.Player, t team.Team, price int64) (player.Player, team.Team) {
	p.Status = player.StatusSold
	p.SoldPrice = price
	p.TeamID = t.ID

	t.PurseRemaining -= price
	t.TotalPurchase += price
	t.TotalRating += int64(p.Rating)

	return p, t
}

// UnwindPlayer resets a sold player back to the pool. Used when the owning
// team is removed from the auction.
func UnwindPlayer(p player.Player) player.Player {
	p.Status = player.StatusUnsold
	p.SoldPrice = 0
	p.TeamID = ""

	return p
}
