package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

// AuctionRepository applies auction mutations across the in-memory team and
// player stores. It exists so the memory driver satisfies the same recorder
// contract as the database-backed one.
type AuctionRepository struct {
	teams   *TeamRepository
	players *PlayerRepository
}

func NewAuctionRepository(teams *TeamRepository, players *PlayerRepository) *AuctionRepository {
	return &AuctionRepository{teams: teams, players: players}
}

func (r *AuctionRepository) RecordSale(ctx context.Context, soldPlayer player.Player, buyer team.Team) error {
	if err := r.players.Update(ctx, soldPlayer); err != nil {
		return fmt.Errorf("record sale: %w", err)
	}
	if err := r.teams.Update(ctx, buyer); err != nil {
		return fmt.Errorf("record sale: %w", err)
	}

	return nil
}

func (r *AuctionRepository) RecordTeamRemoval(ctx context.Context, teamID string, unwoundPlayerIDs []string) error {
	rows, err := r.players.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("record team removal: %w", err)
	}

	unwound := make(map[string]struct{}, len(unwoundPlayerIDs))
	for _, id := range unwoundPlayerIDs {
		unwound[id] = struct{}{}
	}

	for _, row := range rows {
		if row.TeamID != teamID {
			continue
		}
		if _, ok := unwound[row.ID]; !ok {
			continue
		}
		if err := r.players.Update(ctx, auction.UnwindPlayer(row)); err != nil {
			return fmt.Errorf("record team removal: %w", err)
		}
	}

	if err := r.teams.Delete(ctx, teamID); err != nil {
		return fmt.Errorf("record team removal: %w", err)
	}

	return nil
}
