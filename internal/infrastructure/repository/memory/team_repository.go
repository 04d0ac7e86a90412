package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) Insert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.teams {
		if row.ID == item.ID {
			return fmt.Errorf("insert team: duplicate id=%s", item.ID)
		}
	}
	r.teams = append(r.teams, item)

	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID == item.ID {
			r.teams[idx] = item
			return nil
		}
	}

	return fmt.Errorf("update team: no row for id=%s", item.ID)
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID == teamID {
			r.teams = append(r.teams[:idx], r.teams[idx+1:]...)
			return nil
		}
	}

	return nil
}

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}
