package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/auction-desk/internal/domain/player"
	"github.com/riskibarqy/auction-desk/internal/domain/standings"
	"github.com/riskibarqy/auction-desk/internal/domain/team"
	"github.com/riskibarqy/auction-desk/internal/platform/logging"
	"github.com/riskibarqy/auction-desk/internal/usecase"
)

type Handler struct {
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	auctionService     *usecase.AuctionService
	leaderboardService *usecase.LeaderboardService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	auctionService *usecase.AuctionService,
	leaderboardService *usecase.LeaderboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:        teamService,
		playerService:      playerService,
		auctionService:     auctionService,
		leaderboardService: leaderboardService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type createTeamRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	PurseGiven int64  `json:"purseGiven" validate:"required,gt=0"`
}

type createPlayerRequest struct {
	Name      string `json:"name" validate:"required,max=100"`
	Type      string `json:"type" validate:"required"`
	BasePrice int64  `json:"basePrice" validate:"required,gt=0"`
	Rating    int    `json:"rating" validate:"required,min=1,max=10"`
}

type recordSaleRequest struct {
	PlayerID string `json:"playerId" validate:"required"`
	TeamID   string `json:"teamId" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
}

type teamDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PurseGiven     int64  `json:"purseGiven"`
	PurseRemaining int64  `json:"purseRemaining"`
	TotalPurchase  int64  `json:"totalPurchase"`
	TotalRating    int64  `json:"totalRating"`
}

type playerDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	BasePrice int64  `json:"basePrice"`
	Rating    int    `json:"rating"`
	Status    string `json:"status"`
	SoldPrice int64  `json:"soldPrice,omitempty"`
	TeamID    string `json:"teamId,omitempty"`
}

type saleDTO struct {
	Player playerDTO `json:"player"`
	Team   teamDTO   `json:"team"`
}

type importResultDTO struct {
	Imported int `json:"imported"`
}

type leaderboardDTO struct {
	Summary leaderboardSummaryDTO `json:"summary"`
	Rows    []teamStandingDTO     `json:"rows"`
}

type leaderboardSummaryDTO struct {
	TeamCount   int `json:"teamCount"`
	PlayerCount int `json:"playerCount"`
	SoldCount   int `json:"soldCount"`
}

type teamStandingDTO struct {
	Position           int            `json:"position"`
	Team               teamDTO        `json:"team"`
	PlayerCount        int            `json:"playerCount"`
	AverageRating      float64        `json:"averageRating"`
	AveragePurchase    int64          `json:"averagePurchase"`
	SpendPercentage    int            `json:"spendPercentage"`
	TypeCounts         map[string]int `json:"typeCounts"`
	HighestRatedPlayer *playerDTO     `json:"highestRatedPlayer,omitempty"`
	HighestPurchase    *playerDTO     `json:"highestPurchase,omitempty"`
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:             v.ID,
		Name:           v.Name,
		PurseGiven:     v.PurseGiven,
		PurseRemaining: v.PurseRemaining,
		TotalPurchase:  v.TotalPurchase,
		TotalRating:    v.TotalRating,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		Name:      v.Name,
		Type:      string(v.Type),
		BasePrice: v.BasePrice,
		Rating:    v.Rating,
		Status:    string(v.Status),
		SoldPrice: v.SoldPrice,
		TeamID:    v.TeamID,
	}
}

func standingToDTO(v standings.TeamStanding) teamStandingDTO {
	typeCounts := make(map[string]int, len(v.TypeCounts))
	for kind, count := range v.TypeCounts {
		typeCounts[string(kind)] = count
	}

	out := teamStandingDTO{
		Position: v.Position,
		Team: teamDTO{
			ID:             v.TeamID,
			Name:           v.TeamName,
			PurseGiven:     v.PurseGiven,
			PurseRemaining: v.PurseRemaining,
			TotalPurchase:  v.TotalPurchase,
			TotalRating:    v.TotalRating,
		},
		PlayerCount:     v.PlayerCount,
		AverageRating:   v.AverageRating,
		AveragePurchase: v.AveragePurchase,
		SpendPercentage: v.SpendPercentage,
		TypeCounts:      typeCounts,
	}
	if v.HighestRatedPlayer != nil {
		dto := playerToDTO(*v.HighestRatedPlayer)
		out.HighestRatedPlayer = &dto
	}
	if v.HighestPurchase != nil {
		dto := playerToDTO(*v.HighestPurchase)
		out.HighestPurchase = &dto
	}

	return out
}
