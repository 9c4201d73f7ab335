package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/resolve", handler.ResolvePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)

	mux.HandleFunc("GET /v1/teams/resolve", handler.ResolveTeam)
	mux.HandleFunc("GET /v1/teams/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("POST /v1/teams/head-to-head", handler.PostHeadToHead)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)
}
