package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/squads/{squadID}", handler.GetSquad)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/squads/{squadID}/scores", handler.ListSquadScores)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/squads/{squadID}/scores/{gameweek}", handler.GetSquadScore)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/squads/{squadID}/season-summary", handler.GetSeasonSummary)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/leagues/{leagueID}/squads", RequireUser(http.HandlerFunc(handler.SubmitSquad)))
	mux.Handle("GET /v1/leagues/{leagueID}/squads/me", RequireUser(http.HandlerFunc(handler.GetMySquad)))
	mux.Handle("POST /v1/leagues/{leagueID}/squads/{squadID}/transfers", RequireUser(http.HandlerFunc(handler.ApplyTransfers)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/leagues/{leagueID}/gameweeks/{gameweek}/score", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ScoreGameweek)))
}
