package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
	idgen "github.com/riskibarqy/auction-desk/internal/platform/id"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/roster"
)

// CreateTeamInput is the incoming payload for team registration.
type CreateTeamInput struct {
	Name       string
	PurseGiven int64
}

type TeamService struct {
	store    *roster.Store
	teamRepo team.Repository
	recorder auction.Recorder
	idGen    idgen.Generator
	logger   *logging.Logger
}

func NewTeamService(
	store *roster.Store,
	teamRepo team.Repository,
	recorder auction.Recorder,
	idGen idgen.Generator,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		store:    store,
		teamRepo: teamRepo,
		recorder: recorder,
		idGen:    idGen,
		logger:   logger,
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if input.PurseGiven <= 0 {
		return team.Team{}, fmt.Errorf("%w: purse must be greater than zero", ErrInvalidInput)
	}

	teamID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	item := team.New(teamID, input.Name, input.PurseGiven)
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.store.LockMutations()
	defer s.store.UnlockMutations()

	// Durable write first; the roster only advances once the record landed.
	if err := s.teamRepo.Insert(ctx, item); err != nil {
		return team.Team{}, fmt.Errorf("%w: insert team: %v", ErrDependencyUnavailable, err)
	}
	if err := s.store.InsertTeam(item); err != nil {
		return team.Team{}, fmt.Errorf("apply team to roster: %w", err)
	}

	s.logger.InfoContext(ctx, "team created",
		"team_id", item.ID,
		"name", item.Name,
		"purse_given", item.PurseGiven,
	)

	return item, nil
}

// RemoveTeam unwinds every owned player back to the pool and deletes the
// team. The durable write is one transaction; the roster mutation is one
// critical section; neither side can be observed half-applied.
func (s *TeamService) RemoveTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.RemoveTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	s.store.LockMutations()
	defer s.store.UnlockMutations()

	if _, ok := s.store.GetTeam(teamID); !ok {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	owned := s.store.OwnedPlayers(teamID)
	ownedIDs := make([]string, 0, len(owned))
	for _, p := range owned {
		ownedIDs = append(ownedIDs, p.ID)
	}

	if err := s.recorder.RecordTeamRemoval(ctx, teamID, ownedIDs); err != nil {
		return fmt.Errorf("%w: record team removal: %v", ErrDependencyUnavailable, err)
	}

	unwound, err := s.store.RemoveTeam(teamID)
	if err != nil {
		return fmt.Errorf("remove team from roster: %w", err)
	}

	s.logger.InfoContext(ctx, "team removed",
		"team_id", teamID,
		"players_unwound", len(unwound),
	)

	return nil
}

func (s *TeamService) ListTeams(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	return s.store.Teams(), nil
}
