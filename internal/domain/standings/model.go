package standings

import "github.com/riskibarqy/auction-desk/internal/domain/player"

// TeamStanding is one leaderboard row derived from a team and its roster.
type TeamStanding struct {
	TeamID          string
	TeamName        string
	Position        int
	PlayerCount     int
	AverageRating   float64
	AveragePurchase int64
	SpendPercentage int
	PurseGiven      int64
	PurseRemaining  int64
	TotalPurchase   int64
	TotalRating     int64
	TypeCounts      map[player.Type]int
	// HighestRatedPlayer and HighestPurchase are nil for an empty roster.
	HighestRatedPlayer *player.Player
	HighestPurchase    *player.Player
}

// Summary carries the leaderboard header totals.
type Summary struct {
	TeamCount   int
	PlayerCount int
	SoldCount   int
}
