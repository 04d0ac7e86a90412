package roster

import (
	"errors"
	"fmt"
	"sync"

	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/standings"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
)

var (
	ErrTeamNotFound   = errors.New("team not found in roster")
	ErrPlayerNotFound = errors.New("player not found in roster")
	ErrDuplicateID    = errors.New("duplicate id in roster")
)

// Store is the authoritative in-memory snapshot of the auction session. All
// mutations serialize on one store-wide mutex because a sale touches two
// entities and a team removal touches N+1; reads hand out copies so callers
// never observe a mutation mid-application.
type Store struct {
	// txMu serializes whole validate-persist-commit sequences across
	// services, so a sale's validation cannot race another mutation that
	// is still waiting on its durable write.
	txMu sync.Mutex

	mu          sync.RWMutex
	teams       map[string]team.Team
	players     map[string]player.Player
	teamOrder   []string
	playerOrder []string
	ownedByTeam map[string][]string
}

// LockMutations takes the store-wide mutation gate. Callers hold it for the
// full validate-persist-commit sequence and release via UnlockMutations.
func (s *Store) LockMutations() {
	s.txMu.Lock()
}

func (s *Store) UnlockMutations() {
	s.txMu.Unlock()
}

func NewStore() *Store {
	return &Store{
		teams:       make(map[string]team.Team),
		players:     make(map[string]player.Player),
		ownedByTeam: make(map[string][]string),
	}
}

// Load replaces the whole snapshot with durable records, typically at
// startup. Owned-player order follows the incoming player order.
func (s *Store) Load(teams []team.Team, players []player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextTeams := make(map[string]team.Team, len(teams))
	nextTeamOrder := make([]string, 0, len(teams))
	for _, t := range teams {
		if _, ok := nextTeams[t.ID]; ok {
			return fmt.Errorf("%w: team=%s", ErrDuplicateID, t.ID)
		}
		nextTeams[t.ID] = t
		nextTeamOrder = append(nextTeamOrder, t.ID)
	}

	nextPlayers := make(map[string]player.Player, len(players))
	nextPlayerOrder := make([]string, 0, len(players))
	nextOwned := make(map[string][]string)
	for _, p := range players {
		if _, ok := nextPlayers[p.ID]; ok {
			return fmt.Errorf("%w: player=%s", ErrDuplicateID, p.ID)
		}
		if p.Sold() {
			if _, ok := nextTeams[p.TeamID]; !ok {
				return fmt.Errorf("%w: player=%s references team=%s", ErrTeamNotFound, p.ID, p.TeamID)
			}
			nextOwned[p.TeamID] = append(nextOwned[p.TeamID], p.ID)
		}
		nextPlayers[p.ID] = p
		nextPlayerOrder = append(nextPlayerOrder, p.ID)
	}

	s.teams = nextTeams
	s.players = nextPlayers
	s.teamOrder = nextTeamOrder
	s.playerOrder = nextPlayerOrder
	s.ownedByTeam = nextOwned

	return nil
}

func (s *Store) InsertTeam(t team.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[t.ID]; ok {
		return fmt.Errorf("%w: team=%s", ErrDuplicateID, t.ID)
	}
	s.teams[t.ID] = t
	s.teamOrder = append(s.teamOrder, t.ID)

	return nil
}

func (s *Store) InsertPlayer(p player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertPlayerLocked(p)
}

// InsertPlayers adds a batch; either every player lands or none do.
func (s *Store) InsertPlayers(players []player.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: player=%s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		if _, ok := s.players[p.ID]; ok {
			return fmt.Errorf("%w: player=%s", ErrDuplicateID, p.ID)
		}
	}
	for _, p := range players {
		if err := s.insertPlayerLocked(p); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) insertPlayerLocked(p player.Player) error {
	if _, ok := s.players[p.ID]; ok {
		return fmt.Errorf("%w: player=%s", ErrDuplicateID, p.ID)
	}
	s.players[p.ID] = p
	s.playerOrder = append(s.playerOrder, p.ID)
	if p.Sold() {
		s.ownedByTeam[p.TeamID] = append(s.ownedByTeam[p.TeamID], p.ID)
	}

	return nil
}

func (s *Store) GetTeam(teamID string) (team.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[teamID]
	return t, ok
}

func (s *Store) GetPlayer(playerID string) (player.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[playerID]
	return p, ok
}

// ApplySale commits a validated sale to the snapshot. The player state is
// rechecked under the lock so a sale can never double-apply.
func (s *Store) ApplySale(sale auction.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[sale.PlayerID]
	if !ok {
		return fmt.Errorf("%w: player=%s", ErrPlayerNotFound, sale.PlayerID)
	}
	t, ok := s.teams[sale.TeamID]
	if !ok {
		return fmt.Errorf("%w: team=%s", ErrTeamNotFound, sale.TeamID)
	}
	if err := auction.ValidateSale(p, t, sale.Price); err != nil {
		return err
	}

	updatedPlayer, updatedTeam := auction.ApplySale(p, t, sale.Price)
	s.players[sale.PlayerID] = updatedPlayer
	s.teams[sale.TeamID] = updatedTeam
	s.ownedByTeam[sale.TeamID] = append(s.ownedByTeam[sale.TeamID], sale.PlayerID)

	return nil
}

// RemoveTeam deletes the team and unwinds every owned player back to the
// pool in one critical section; no reader can observe the half-applied state.
func (s *Store) RemoveTeam(teamID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrTeamNotFound, teamID)
	}

	owned := s.ownedByTeam[teamID]
	unwound := make([]string, 0, len(owned))
	for _, playerID := range owned {
		p, ok := s.players[playerID]
		if !ok {
			continue
		}
		s.players[playerID] = auction.UnwindPlayer(p)
		unwound = append(unwound, playerID)
	}

	delete(s.ownedByTeam, teamID)
	delete(s.teams, teamID)
	for i, id := range s.teamOrder {
		if id == teamID {
			s.teamOrder = append(s.teamOrder[:i], s.teamOrder[i+1:]...)
			break
		}
	}

	return unwound, nil
}

// Teams returns the teams in creation order.
func (s *Store) Teams() []team.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]team.Team, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, s.teams[id])
	}

	return out
}

// Players returns the pool in creation order.
func (s *Store) Players() []player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]player.Player, 0, len(s.playerOrder))
	for _, id := range s.playerOrder {
		out = append(out, s.players[id])
	}

	return out
}

// OwnedPlayers returns a team's players in purchase order.
func (s *Store) OwnedPlayers(teamID string) []player.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.ownedPlayersLocked(teamID)
}

func (s *Store) ownedPlayersLocked(teamID string) []player.Player {
	owned := s.ownedByTeam[teamID]
	out := make([]player.Player, 0, len(owned))
	for _, id := range owned {
		if p, ok := s.players[id]; ok {
			out = append(out, p)
		}
	}

	return out
}

// Rosters returns one consistent team+players snapshot for the ranking
// projection, taken under a single read lock.
func (s *Store) Rosters() []standings.TeamRoster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]standings.TeamRoster, 0, len(s.teamOrder))
	for _, id := range s.teamOrder {
		out = append(out, standings.TeamRoster{
			Team:    s.teams[id],
			Players: s.ownedPlayersLocked(id),
		})
	}

	return out
}
