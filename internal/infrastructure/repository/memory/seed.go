package memory

import (
	"github.com/pitchside/fantasy-core/internal/domain/league"
	"github.com/pitchside/fantasy-core/internal/domain/player"
)

const (
	LeagueIDLiga1Indonesia = "idn-liga-1-2025"
	LeagueIDPremierLeague  = "eng-premier-league-2025"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDLiga1Indonesia,
			Name:        "Liga 1 Indonesia",
			CountryCode: "ID",
			Season:      "2025/2026",
			IsDefault:   true,
		},
		{
			ID:          LeagueIDPremierLeague,
			Name:        "Premier League",
			CountryCode: "GB",
			Season:      "2025/2026",
			IsDefault:   false,
		},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "idn-gk-01", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persija", Name: "Andritany Ardhiyasa", Position: player.PositionGoalkeeper, Price: 90, SeasonPoints: 42, Status: player.StatusAvailable},
		{ID: "idn-gk-02", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persib", Name: "Teja Paku Alam", Position: player.PositionGoalkeeper, Price: 85, SeasonPoints: 38, Status: player.StatusAvailable},
		{ID: "idn-def-01", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persija", Name: "Hansamu Yama", Position: player.PositionDefender, Price: 88, SeasonPoints: 51, Status: player.StatusAvailable},
		{ID: "idn-def-02", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persib", Name: "Nick Kuipers", Position: player.PositionDefender, Price: 92, SeasonPoints: 55, Status: player.StatusAvailable},
		{ID: "idn-def-03", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persebaya", Name: "Dusan Stevanovic", Position: player.PositionDefender, Price: 84, SeasonPoints: 44, Status: player.StatusDoubtful, StatusReason: "knock in training"},
		{ID: "idn-def-04", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-baliutd", Name: "Ricky Fajrin", Position: player.PositionDefender, Price: 80, SeasonPoints: 40, Status: player.StatusAvailable},
		{ID: "idn-def-05", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persebaya", Name: "Arief Catur", Position: player.PositionDefender, Price: 72, SeasonPoints: 28, Status: player.StatusAvailable},
		{ID: "idn-def-06", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-baliutd", Name: "Kadek Arel", Position: player.PositionDefender, Price: 70, SeasonPoints: 22, Status: player.StatusSuspended, StatusReason: "accumulated yellow cards"},
		{ID: "idn-mid-01", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persija", Name: "Maciej Gajos", Position: player.PositionMidfielder, Price: 98, SeasonPoints: 64, Status: player.StatusAvailable},
		{ID: "idn-mid-02", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persib", Name: "Marc Klok", Position: player.PositionMidfielder, Price: 99, SeasonPoints: 66, Status: player.StatusAvailable},
		{ID: "idn-mid-03", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persebaya", Name: "Bruno Moreira", Position: player.PositionMidfielder, Price: 95, SeasonPoints: 58, Status: player.StatusAvailable},
		{ID: "idn-mid-04", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-baliutd", Name: "Eber Bessa", Position: player.PositionMidfielder, Price: 97, SeasonPoints: 60, Status: player.StatusAvailable},
		{ID: "idn-mid-05", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-baliutd", Name: "Mitsuru Maruoka", Position: player.PositionMidfielder, Price: 90, SeasonPoints: 47, Status: player.StatusInjured, StatusReason: "hamstring strain"},
		{ID: "idn-mid-06", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persib", Name: "Dedi Kusnandar", Position: player.PositionMidfielder, Price: 78, SeasonPoints: 31, Status: player.StatusAvailable},
		{ID: "idn-fwd-01", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persija", Name: "Gustavo Almeida", Position: player.PositionForward, Price: 105, SeasonPoints: 72, Status: player.StatusAvailable},
		{ID: "idn-fwd-02", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persib", Name: "David da Silva", Position: player.PositionForward, Price: 108, SeasonPoints: 75, Status: player.StatusAvailable},
		{ID: "idn-fwd-03", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-persebaya", Name: "Paulo Henrique", Position: player.PositionForward, Price: 100, SeasonPoints: 61, Status: player.StatusAvailable},
		{ID: "idn-fwd-04", LeagueID: LeagueIDLiga1Indonesia, ClubID: "idn-baliutd", Name: "Ilija Spasojevic", Position: player.PositionForward, Price: 88, SeasonPoints: 39, Status: player.StatusEliminated, StatusReason: "left the league"},
		{ID: "eng-gk-01", LeagueID: LeagueIDPremierLeague, ClubID: "eng-ars", Name: "David Raya", Position: player.PositionGoalkeeper, Price: 92, SeasonPoints: 48, Status: player.StatusAvailable},
		{ID: "eng-def-01", LeagueID: LeagueIDPremierLeague, ClubID: "eng-ars", Name: "William Saliba", Position: player.PositionDefender, Price: 96, SeasonPoints: 57, Status: player.StatusAvailable},
		{ID: "eng-mid-01", LeagueID: LeagueIDPremierLeague, ClubID: "eng-liv", Name: "Dominik Szoboszlai", Position: player.PositionMidfielder, Price: 98, SeasonPoints: 62, Status: player.StatusAvailable},
		{ID: "eng-fwd-01", LeagueID: LeagueIDPremierLeague, ClubID: "eng-liv", Name: "Darwin Nunez", Position: player.PositionForward, Price: 104, SeasonPoints: 59, Status: player.StatusAvailable},
	}
}

// SeedRepositories builds memory repositories preloaded with the demo
// leagues and catalog. Used by the API in memory storage mode.
func SeedRepositories() (*LeagueRepository, *PlayerRepository) {
	leagues := NewLeagueRepository()
	for _, item := range SeedLeagues() {
		leagues.Put(item)
	}

	players := NewPlayerRepository()
	for _, item := range SeedPlayers() {
		players.Put(item)
	}

	return leagues, players
}
