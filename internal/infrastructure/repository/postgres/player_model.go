package postgres

import "github.com/pitchside/fantasy-core/internal/domain/player"

type playerRow struct {
	PublicID       string `db:"public_id"`
	LeaguePublicID string `db:"league_public_id"`
	ClubPublicID   string `db:"club_public_id"`
	Name           string `db:"name"`
	Position       string `db:"position"`
	Price          int64  `db:"price"`
	SeasonPoints   int    `db:"season_points"`
	Status         string `db:"status"`
	StatusReason   string `db:"status_reason"`
}

func (r playerRow) toDomain() player.Player {
	return player.Player{
		ID:           r.PublicID,
		LeagueID:     r.LeaguePublicID,
		ClubID:       r.ClubPublicID,
		Name:         r.Name,
		Position:     player.Position(r.Position),
		Price:        r.Price,
		SeasonPoints: r.SeasonPoints,
		Status:       player.Status(r.Status),
		StatusReason: r.StatusReason,
	}
}
