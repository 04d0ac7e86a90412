package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	out := make([]player.Player, 0, len(players))
	out = append(out, players...)

	return &PlayerRepository{players: out}
}

func (r *PlayerRepository) Insert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(item)
}

func (r *PlayerRepository) InsertBatch(_ context.Context, items []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Check the whole batch before touching state so a bad row rejects
	// the entire import.
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("insert player batch: duplicate id=%s", item.ID)
		}
		seen[item.ID] = struct{}{}
		for _, row := range r.players {
			if row.ID == item.ID {
				return fmt.Errorf("insert player batch: duplicate id=%s", item.ID)
			}
		}
	}
	r.players = append(r.players, items...)

	return nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.players {
		if r.players[idx].ID == item.ID {
			r.players[idx] = item
			return nil
		}
	}

	return fmt.Errorf("update player: no row for id=%s", item.ID)
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *PlayerRepository) insertLocked(item player.Player) error {
	for _, row := range r.players {
		if row.ID == item.ID {
			return fmt.Errorf("insert player: duplicate id=%s", item.ID)
		}
	}
	r.players = append(r.players, item)

	return nil
}
