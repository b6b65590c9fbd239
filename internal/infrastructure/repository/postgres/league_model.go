package postgres

import "github.com/pitchside/fantasy-core/internal/domain/league"

type leagueRow struct {
	PublicID    string `db:"public_id"`
	Name        string `db:"name"`
	CountryCode string `db:"country_code"`
	Season      string `db:"season"`
	IsDefault   bool   `db:"is_default"`
}

func (r leagueRow) toDomain() league.League {
	return league.League{
		ID:          r.PublicID,
		Name:        r.Name,
		CountryCode: r.CountryCode,
		Season:      r.Season,
		IsDefault:   r.IsDefault,
	}
}
