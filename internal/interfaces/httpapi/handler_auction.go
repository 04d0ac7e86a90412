package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/auction-desk/internal/usecase"
)

func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordSale")
	defer span.End()

	var req recordSaleRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	soldPlayer, buyer, err := h.auctionService.Sell(ctx, usecase.SellInput{
		PlayerID: req.PlayerID,
		TeamID:   req.TeamID,
		Price:    req.Price,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record sale failed", "player_id", req.PlayerID, "team_id", req.TeamID, "price", req.Price, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, saleDTO{
		Player: playerToDTO(soldPlayer),
		Team:   teamToDTO(buyer),
	})
}
