package httpapi

import (
	"net/http"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	board, err := h.leaderboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]teamStandingDTO, 0, len(board.Rows))
	for _, row := range board.Rows {
		rows = append(rows, standingToDTO(row))
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardDTO{
		Summary: leaderboardSummaryDTO{
			TeamCount:   board.Summary.TeamCount,
			PlayerCount: board.Summary.PlayerCount,
			SoldCount:   board.Summary.SoldCount,
		},
		Rows: rows,
	})
}
