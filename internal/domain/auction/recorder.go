package auction

import (
	"context"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

// Recorder persists multi-entity auction mutations as a single unit. A sale
// touches one player row and one team row; a team removal touches the team
// row plus every owned player row. Either all writes land or none do.
type Recorder interface {
	RecordSale(ctx context.Context, soldPlayer player.Player, buyer team.Team) error
	RecordTeamRemoval(ctx context.Context, teamID string, unwoundPlayerIDs []string) error
}
