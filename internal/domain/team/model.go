package team

import "fmt"

// Team is a franchise bidding in the auction. PurseGiven is fixed at creation;
// PurseRemaining, TotalPurchase and TotalRating are maintained aggregates kept
// in step with every recorded sale.
type Team struct {
	ID             string
	Name           string
	PurseGiven     int64
	PurseRemaining int64
	TotalPurchase  int64
	TotalRating    int64
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.PurseGiven <= 0 {
		return fmt.Errorf("team purse must be greater than zero")
	}
	if t.PurseRemaining < 0 || t.PurseRemaining > t.PurseGiven {
		return fmt.Errorf("team purse remaining out of range")
	}
	if t.PurseGiven-t.PurseRemaining != t.TotalPurchase {
		return fmt.Errorf("team purchase total does not match spent purse")
	}
	if t.TotalRating < 0 {
		return fmt.Errorf("team total rating cannot be negative")
	}

	return nil
}

// New returns a team with a full purse and zeroed aggregates.
func New(id, name string, purseGiven int64) Team {
	return Team{
		ID:             id,
		Name:           name,
		PurseGiven:     purseGiven,
		PurseRemaining: purseGiven,
	}
}
