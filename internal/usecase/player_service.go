package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
	idgen "github.com/riskibarqy/auction-desk/internal/platform/id"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/roster"
)

// CreatePlayerInput is the incoming payload for one pool registration.
type CreatePlayerInput struct {
	Name      string
	Type      string
	BasePrice int64
	Rating    int
}

type PlayerService struct {
	store      *roster.Store
	playerRepo player.Repository
	idGen      idgen.Generator
	logger     *logging.Logger
	// importWorkers caps the parallel row validation during bulk import.
	importWorkers int
}

func NewPlayerService(
	store *roster.Store,
	playerRepo player.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		store:         store,
		playerRepo:    playerRepo,
		idGen:         idGen,
		logger:        logger,
		importWorkers: defaultImportWorkers,
	}
}

// SetImportWorkers overrides the parallelism for bulk import validation.
func (s *PlayerService) SetImportWorkers(n int) {
	if n > 0 {
		s.importWorkers = n
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	item, err := s.buildPlayer(input)
	if err != nil {
		return player.Player{}, err
	}

	s.store.LockMutations()
	defer s.store.UnlockMutations()

	if err := s.playerRepo.Insert(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("%w: insert player: %v", ErrDependencyUnavailable, err)
	}
	if err := s.store.InsertPlayer(item); err != nil {
		return player.Player{}, fmt.Errorf("apply player to roster: %w", err)
	}

	s.logger.InfoContext(ctx, "player created",
		"player_id", item.ID,
		"name", item.Name,
		"type", item.Type,
		"base_price", item.BasePrice,
	)

	return item, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	return s.store.Players(), nil
}

func (s *PlayerService) buildPlayer(input CreatePlayerInput) (player.Player, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)

	if input.Name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if _, ok := player.AllTypes[player.Type(input.Type)]; !ok {
		return player.Player{}, fmt.Errorf("%w: invalid player type %q", ErrInvalidInput, input.Type)
	}
	if input.BasePrice <= 0 {
		return player.Player{}, fmt.Errorf("%w: base price must be greater than zero", ErrInvalidInput)
	}
	if input.Rating < player.MinRating || input.Rating > player.MaxRating {
		return player.Player{}, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, player.MinRating, player.MaxRating)
	}

	playerID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	return player.Player{
		ID:        playerID,
		Name:      input.Name,
		Type:      player.Type(input.Type),
		BasePrice: input.BasePrice,
		Rating:    input.Rating,
		Status:    player.StatusUnsold,
	}, nil
}
