package model

import (
	"errors"
	"fmt"
)

// PlayoffBracketEntry is one team's postseason standing, flattened out of
// whatever bracket structure the platform exposes.
type PlayoffBracketEntry struct {
	TeamID         string `json:"team_id"`
	Seed           int    `json:"seed"`
	CurrentRound   int    `json:"current_round"`
	OpponentTeamID string `json:"opponent_team_id,omitempty"`
	IsEliminated   bool   `json:"is_eliminated"`
	IsConsolation  bool   `json:"is_consolation"`
	IsChampionship bool   `json:"is_championship"`
}

// NewBracketEntry builds an entry and rejects inconsistent platform data. A
// team cannot be out of the tournament and playing for the title at once.
func NewBracketEntry(teamID string, seed, round int, opponentID string, eliminated, consolation, championship bool) (*PlayoffBracketEntry, error) {
	if teamID == "" {
		return nil, errors.New("bracket entry is missing a team id")
	}
	if seed < 1 {
		return nil, fmt.Errorf("invalid seed %d for team %s", seed, teamID)
	}
	if round < 1 {
		return nil, fmt.Errorf("invalid round %d for team %s", round, teamID)
	}
	if eliminated && championship {
		return nil, fmt.Errorf("team %s cannot be both eliminated and in the championship", teamID)
	}
	return &PlayoffBracketEntry{
		TeamID:         teamID,
		Seed:           seed,
		CurrentRound:   round,
		OpponentTeamID: opponentID,
		IsEliminated:   eliminated,
		IsConsolation:  consolation,
		IsChampionship: championship,
	}, nil
}
