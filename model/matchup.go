package model

import (
	"errors"
	"fmt"
)

// WeeklyMatchup is the canonical head-to-head pairing for one week,
// regardless of which platform it came from. Instances are built once by a
// platform normalizer and never mutated afterwards.
type WeeklyMatchup struct {
	Week        int                 `json:"week"`
	HomeTeamID  string              `json:"home_team_id"`
	AwayTeamID  string              `json:"away_team_id"`
	HomeScore   float64             `json:"home_score"`
	AwayScore   float64             `json:"away_score"`
	HomePlayers []WeeklyPlayerStats `json:"home_players"`
	AwayPlayers []WeeklyPlayerStats `json:"away_players"`
}

// WeeklyPlayerStats is one player's scoring line for one week. Points may be
// negative, some platforms allow negative scoring plays.
type WeeklyPlayerStats struct {
	PlayerID  string   `json:"player_id"`
	Name      string   `json:"name"`
	Position  Position `json:"position"`
	Points    float64  `json:"points"`
	IsStarter bool     `json:"is_starter"`
}

// Validate checks the invariants every normalizer must uphold: two distinct
// non-empty team ids, non-negative team scores, and a name for every player.
func (m *WeeklyMatchup) Validate() error {
	if m.Week < 1 {
		return fmt.Errorf("invalid week: %d", m.Week)
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return errors.New("matchup is missing a team id")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("matchup pairs team %s against itself", m.HomeTeamID)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return errors.New("matchup has a negative team score")
	}
	for _, p := range append(append([]WeeklyPlayerStats{}, m.HomePlayers...), m.AwayPlayers...) {
		if p.Name == "" {
			return fmt.Errorf("player %s has no name", p.PlayerID)
		}
	}
	return nil
}

// Starters filters a stat line list down to the players that counted.
func Starters(players []WeeklyPlayerStats) []WeeklyPlayerStats {
	result := make([]WeeklyPlayerStats, 0, len(players))
	for _, p := range players {
		if p.IsStarter {
			result = append(result, p)
		}
	}
	return result
}
