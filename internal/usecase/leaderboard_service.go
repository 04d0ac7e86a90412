package usecase

import (
	"context"

	"github.com/riskibarqy/auction-desk/internal/domain/standings"
	"github.com/riskibarqy/auction-desk/internal/roster"
)

// Leaderboard is the full ranked projection plus its header summary.
type Leaderboard struct {
	Summary standings.Summary
	Rows    []standings.TeamStanding
}

type LeaderboardService struct {
	store *roster.Store
}

func NewLeaderboardService(store *roster.Store) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// Get recomputes the leaderboard from the current snapshot on every call;
// nothing is cached, so the projection can never go stale.
func (s *LeaderboardService) Get(ctx context.Context) (Leaderboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	rosters := s.store.Rosters()
	rows := standings.Compute(rosters)

	return Leaderboard{
		Summary: standings.Summarize(s.store.Teams(), s.store.Players()),
		Rows:    rows,
	}, nil
}
