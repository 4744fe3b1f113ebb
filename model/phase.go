package model

// SeasonPhase describes whether a week falls in the regular season or in the
// playoffs. It is derived from league settings, never persisted on its own.
type SeasonPhase string

const (
	PhaseRegularSeason SeasonPhase = "regular_season"
	PhasePlayoffs      SeasonPhase = "playoffs"
)

// ClassifyPhase maps a week onto a season phase. The week of the playoff
// start itself is already playoffs. Both inputs must be >= 1; values below
// that are a configuration error upstream and the result is undefined.
func ClassifyPhase(currentWeek, playoffStartWeek int) SeasonPhase {
	if currentWeek < playoffStartWeek {
		return PhaseRegularSeason
	}
	return PhasePlayoffs
}
