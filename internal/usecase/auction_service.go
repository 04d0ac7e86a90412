package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/roster"
)

// SellInput is the incoming payload for one hammer-down.
type SellInput struct {
	PlayerID string
	TeamID   string
	Price    int64
}

type AuctionService struct {
	store    *roster.Store
	recorder auction.Recorder
	logger   *logging.Logger
}

func NewAuctionService(store *roster.Store, recorder auction.Recorder, logger *logging.Logger) *AuctionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuctionService{
		store:    store,
		recorder: recorder,
		logger:   logger,
	}
}

// Sell validates and applies one sale. The durable write is awaited before
// the roster commits: if persistence fails the roster stays at its
// pre-transaction snapshot, so the caller may safely retry the same call.
func (s *AuctionService) Sell(ctx context.Context, input SellInput) (player.Player, team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Sell")
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	input.TeamID = strings.TrimSpace(input.TeamID)
	if input.PlayerID == "" {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if input.TeamID == "" {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	s.store.LockMutations()
	defer s.store.UnlockMutations()

	p, ok := s.store.GetPlayer(input.PlayerID)
	if !ok {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}
	t, ok := s.store.GetTeam(input.TeamID)
	if !ok {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, input.TeamID)
	}

	if err := auction.ValidateSale(p, t, input.Price); err != nil {
		return player.Player{}, team.Team{}, err
	}

	updatedPlayer, updatedTeam := auction.ApplySale(p, t, input.Price)
	if err := s.recorder.RecordSale(ctx, updatedPlayer, updatedTeam); err != nil {
		return player.Player{}, team.Team{}, fmt.Errorf("%w: record sale: %v", ErrDependencyUnavailable, err)
	}

	if err := s.store.ApplySale(auction.Sale(input)); err != nil {
		// The snapshot moved between validation and commit; the durable
		// record is now ahead of memory and must be reconciled by a reload.
		s.logger.ErrorContext(ctx, "sale recorded but roster commit failed",
			"player_id", input.PlayerID,
			"team_id", input.TeamID,
			"price", input.Price,
			"error", err,
		)
		return player.Player{}, team.Team{}, fmt.Errorf("apply sale to roster: %w", err)
	}

	s.logger.InfoContext(ctx, "player sold",
		"player_id", input.PlayerID,
		"team_id", input.TeamID,
		"price", input.Price,
		"purse_remaining", updatedTeam.PurseRemaining,
	)

	return updatedPlayer, updatedTeam, nil
}
