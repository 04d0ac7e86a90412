package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/roster"
)

type failingPlayerRepository struct{}

func (failingPlayerRepository) Insert(context.Context, player.Player) error {
	return errors.New("insert backend down")
}

func (failingPlayerRepository) InsertBatch(context.Context, []player.Player) error {
	return errors.New("batch backend down")
}

func (failingPlayerRepository) Update(context.Context, player.Player) error {
	return errors.New("update backend down")
}

func (failingPlayerRepository) ListAll(context.Context) ([]player.Player, error) {
	return nil, errors.New("list backend down")
}

func newImportService(t *testing.T) (*PlayerService, auctionEnv) {
	t.Helper()

	env := newAuctionEnv(t, nil, nil)
	service := NewPlayerService(env.store, env.players, &sequentialIDGenerator{prefix: "player"}, logging.NewNop())

	return service, env
}

func TestPlayerService_ImportPlayers(t *testing.T) {
	service, env := newImportService(t)

	body := strings.Join([]string{
		"name,type,base_price,rating",
		"R. Sharma,Batsman,200,9",
		"J. Bumrah,Bowler,180,10",
		"H. Pandya,All-rounder,150,8",
	}, "\n")

	result, err := service.ImportPlayers(t.Context(), strings.NewReader(body))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 3 {
		t.Fatalf("expected 3 imported, got %d", result.Imported)
	}

	pool := env.store.Players()
	if len(pool) != 3 {
		t.Fatalf("expected 3 players in roster, got %d", len(pool))
	}
	for _, p := range pool {
		if p.Status != player.StatusUnsold {
			t.Fatalf("expected unsold import, got %+v", p)
		}
	}

	durable, err := env.players.ListAll(t.Context())
	if err != nil {
		t.Fatalf("list durable players: %v", err)
	}
	if len(durable) != 3 {
		t.Fatalf("expected 3 durable rows, got %d", len(durable))
	}
}

func TestPlayerService_ImportPlayersBadRowFailsWholeBatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "invalid rating",
			body: "name,type,base_price,rating\nR. Sharma,Batsman,200,9\nJ. Bumrah,Bowler,180,11",
		},
		{
			name: "invalid type",
			body: "name,type,base_price,rating\nR. Sharma,Pinch Hitter,200,9",
		},
		{
			name: "zero base price",
			body: "name,type,base_price,rating\nR. Sharma,Batsman,0,9",
		},
		{
			name: "non numeric base price",
			body: "name,type,base_price,rating\nR. Sharma,Batsman,cheap,9",
		},
		{
			name: "missing header column",
			body: "name,type,rating\nR. Sharma,Batsman,9",
		},
		{
			name: "empty body",
			body: "",
		},
		{
			name: "header only",
			body: "name,type,base_price,rating\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, env := newImportService(t)

			_, err := service.ImportPlayers(t.Context(), strings.NewReader(tt.body))
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(env.store.Players()) != 0 {
				t.Fatal("expected roster untouched")
			}
			durable, listErr := env.players.ListAll(t.Context())
			if listErr != nil {
				t.Fatalf("list durable players: %v", listErr)
			}
			if len(durable) != 0 {
				t.Fatal("expected no durable rows")
			}
		})
	}
}

func TestPlayerService_ImportPlayersPersistenceFailure(t *testing.T) {
	store := roster.NewStore()
	service := NewPlayerService(store, failingPlayerRepository{}, &sequentialIDGenerator{prefix: "player"}, logging.NewNop())

	body := "name,type,base_price,rating\nR. Sharma,Batsman,200,9"
	_, err := service.ImportPlayers(t.Context(), strings.NewReader(body))
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if len(store.Players()) != 0 {
		t.Fatal("expected roster untouched after failed durable write")
	}
}

func TestPlayerService_ImportPlayersWorkerOverride(t *testing.T) {
	service, env := newImportService(t)
	service.SetImportWorkers(2)

	rows := []string{"name,type,base_price,rating"}
	for i := 0; i < 20; i++ {
		rows = append(rows, "Player,Wicketkeeper,100,5")
	}

	result, err := service.ImportPlayers(t.Context(), strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Imported != 20 {
		t.Fatalf("expected 20 imported, got %d", result.Imported)
	}
	if len(env.store.Players()) != 20 {
		t.Fatalf("expected 20 players in roster, got %d", len(env.store.Players()))
	}
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	service, env := newImportService(t)

	created, err := service.CreatePlayer(t.Context(), CreatePlayerInput{
		Name:      " V. Kohli ",
		Type:      "Batsman",
		BasePrice: 200,
		Rating:    10,
	})
	if err != nil {
		t.Fatalf("create player failed: %v", err)
	}

	if created.Name != "V. Kohli" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Status != player.StatusUnsold {
		t.Fatalf("expected unsold status, got %s", created.Status)
	}
	if _, ok := env.store.GetPlayer(created.ID); !ok {
		t.Fatal("expected player in roster")
	}
}

func TestPlayerService_CreatePlayerValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreatePlayerInput
	}{
		{name: "blank name", input: CreatePlayerInput{Name: " ", Type: "Bowler", BasePrice: 100, Rating: 5}},
		{name: "unknown type", input: CreatePlayerInput{Name: "X", Type: "Coach", BasePrice: 100, Rating: 5}},
		{name: "zero base price", input: CreatePlayerInput{Name: "X", Type: "Bowler", BasePrice: 0, Rating: 5}},
		{name: "rating too low", input: CreatePlayerInput{Name: "X", Type: "Bowler", BasePrice: 100, Rating: 0}},
		{name: "rating too high", input: CreatePlayerInput{Name: "X", Type: "Bowler", BasePrice: 100, Rating: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, env := newImportService(t)

			if _, err := service.CreatePlayer(t.Context(), tt.input); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(env.store.Players()) != 0 {
				t.Fatal("expected roster untouched")
			}
		})
	}
}
