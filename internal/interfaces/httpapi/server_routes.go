package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerSpectatorRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.Handle("POST /v1/teams", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreateTeam)))
	mux.Handle("DELETE /v1/teams/{teamID}", RequireAdminToken(adminToken, http.HandlerFunc(handler.RemoveTeam)))
	mux.Handle("POST /v1/players", RequireAdminToken(adminToken, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/players/import", RequireAdminToken(adminToken, http.HandlerFunc(handler.ImportPlayers)))
	mux.Handle("POST /v1/auction/sales", RequireAdminToken(adminToken, http.HandlerFunc(handler.RecordSale)))
}
