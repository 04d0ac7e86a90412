package app

import (
	"context"
	"fmt"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/riskibarqy/auction-desk/internal/config"
	"github.com/riskibarqy/auction-desk/internal/domain/auction"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
	"github.com/riskibarqy/auction-desk/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/auction-desk/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/auction-desk/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/auction-desk/internal/platform/id"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/roster"
	"github.com/riskibarqy/auction-desk/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// NewHTTPServer wires the roster store, repositories, services and the HTTP
// router. The returned cleanup releases the database handle, if any.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		teamRepo   team.Repository
		playerRepo player.Repository
		recorder   auction.Recorder
		cleanup    = func() {}
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		memTeams := memory.NewTeamRepository(nil)
		memPlayers := memory.NewPlayerRepository(nil)
		teamRepo = memTeams
		playerRepo = memPlayers
		recorder = memory.NewAuctionRepository(memTeams, memPlayers)
	case config.StoreDriverPostgres:
		db, err := otelsqlx.Connect("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		teamRepo = postgres.NewTeamRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		recorder = postgres.NewAuctionRepository(db)
		cleanup = func() { _ = db.Close() }
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	store := roster.NewStore()
	if err := loadRoster(ctx, store, teamRepo, playerRepo); err != nil {
		cleanup()
		return nil, nil, err
	}
	logger.Info("roster loaded",
		"driver", cfg.StoreDriver,
		"teams", len(store.Teams()),
		"players", len(store.Players()),
	)

	idGen := idgen.NewRandomGenerator()
	teamSvc := usecase.NewTeamService(store, teamRepo, recorder, idGen, logger)
	playerSvc := usecase.NewPlayerService(store, playerRepo, idGen, logger)
	playerSvc.SetImportWorkers(cfg.ImportWorkers)
	auctionSvc := usecase.NewAuctionService(store, recorder, logger)
	leaderboardSvc := usecase.NewLeaderboardService(store)

	handler := httpapi.NewHandler(teamSvc, playerSvc, auctionSvc, leaderboardSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func loadRoster(ctx context.Context, store *roster.Store, teamRepo team.Repository, playerRepo player.Repository) error {
	teams, err := teamRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load teams: %w", err)
	}
	players, err := playerRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	if err := store.Load(teams, players); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}

	return nil
}
