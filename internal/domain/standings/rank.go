package standings

import (
	"math"
	"sort"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

// TeamRoster pairs a team with its owned players in purchase order. The
// player order is the tie-break source for the per-team argmax picks.
type TeamRoster struct {
	Team    team.Team
	Players []player.Player
}

// Compute derives the leaderboard from the current roster snapshot. It is a
// pure projection: teams sort descending by average rating, and the sort is
// stable so equal ratings keep their input order.
func Compute(rosters []TeamRoster) []TeamStanding {
	rows := make([]TeamStanding, 0, len(rosters))
	for _, r := range rosters {
		rows = append(rows, computeRow(r))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AverageRating > rows[j].AverageRating
	})
	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows
}

func computeRow(r TeamRoster) TeamStanding {
	row := TeamStanding{
		TeamID:         r.Team.ID,
		TeamName:       r.Team.Name,
		PlayerCount:    len(r.Players),
		PurseGiven:     r.Team.PurseGiven,
		PurseRemaining: r.Team.PurseRemaining,
		TotalPurchase:  r.Team.TotalPurchase,
		TotalRating:    r.Team.TotalRating,
		TypeCounts:     make(map[player.Type]int, len(player.AllTypes)),
	}

	if r.Team.PurseGiven > 0 {
		spent := r.Team.PurseGiven - r.Team.PurseRemaining
		row.SpendPercentage = int(math.Round(100 * float64(spent) / float64(r.Team.PurseGiven)))
	}

	if len(r.Players) == 0 {
		return row
	}

	row.AverageRating = float64(r.Team.TotalRating) / float64(len(r.Players))
	row.AveragePurchase = int64(math.Round(float64(r.Team.TotalPurchase) / float64(len(r.Players))))

	topRated := r.Players[0]
	topBuy := r.Players[0]
	for _, p := range r.Players {
		row.TypeCounts[p.Type]++
		// Strict comparisons keep the first-encountered player on ties.
		if p.Rating > topRated.Rating {
			topRated = p
		}
		if p.SoldPrice > topBuy.SoldPrice {
			topBuy = p
		}
	}

	row.HighestRatedPlayer = &topRated
	row.HighestPurchase = &topBuy

	return row
}

// Summarize counts the pool-wide sold progress shown above the leaderboard.
func Summarize(teams []team.Team, players []player.Player) Summary {
	out := Summary{
		TeamCount:   len(teams),
		PlayerCount: len(players),
	}
	for _, p := range players {
		if p.Sold() {
			out.SoldCount++
		}
	}

	return out
}
