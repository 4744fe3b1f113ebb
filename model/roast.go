package model

import "time"

// RoastEntry is the persisted record of one generation run for a league and
// week. Entries are replaced wholesale on regeneration, never merged.
type RoastEntry struct {
	LeagueID  int32     `json:"league_id"`
	Week      int       `json:"week"`
	Generated time.Time `json:"generated"`
	// Roasts maps team id to generated roast text.
	Roasts map[string]string `json:"roasts"`
	// Standings is an optional snapshot of the ranked team list as it
	// existed at generation time, kept so historical weeks render without
	// another platform fetch.
	Standings []TeamStanding `json:"standings,omitempty"`
}

// Player is the slim directory record backing player name resolution when a
// platform's matchup payload carries ids without names.
type Player struct {
	ID       string
	Name     string
	Position Position
	Team     string
}
