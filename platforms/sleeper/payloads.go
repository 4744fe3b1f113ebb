package sleeper

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

type sleeperLeague struct {
	LeagueID string          `json:"league_id"`
	Name     string          `json:"name"`
	Season   string          `json:"season"`
	Settings *leagueSettings `json:"settings"`
}

type leagueSettings struct {
	PlayoffWeekStart int `json:"playoff_week_start"`
	PlayoffTeams     int `json:"playoff_teams"`
}

type sleeperState struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}

// sleeperMatchup is one side of a pairing. Two entries share a matchup_id.
type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	Players       []string           `json:"players"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

type sleeperRoster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Settings *rosterSettings `json:"settings"`
}

type rosterSettings struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"fpts"`
	PointsAgainst float64 `json:"fpts_against"`
}

// bracketGame is one game in a winners or losers bracket. t1/t2/w/l are
// roster ids and are 0 while undecided. p is the place the game plays for,
// 1 marks the title game of its bracket.
type bracketGame struct {
	Round    int `json:"r"`
	Match    int `json:"m"`
	Team1    int `json:"t1"`
	Team2    int `json:"t2"`
	Winner   int `json:"w"`
	Loser    int `json:"l"`
	Position int `json:"p"`
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:       p.ID,
		Name:     fmt.Sprintf("%s %s", p.FirstName, p.LastName),
		Position: model.ParsePosition(p.Position),
		Team:     p.Team,
	}
}

func buildStandings(rosters []sleeperRoster, users []sleeperUser) []model.TeamStanding {
	names := make(map[string]sleeperUser, len(users))
	for _, u := range users {
		names[u.UserID] = u
	}

	standings := make([]model.TeamStanding, 0, len(rosters))
	for _, r := range rosters {
		s := model.TeamStanding{
			TeamID: fmt.Sprintf("%d", r.RosterID),
			Name:   fmt.Sprintf("Team %d", r.RosterID),
		}
		if u, ok := names[r.OwnerID]; ok {
			s.Owner = u.DisplayName
			s.Name = u.DisplayName
			if u.Metadata != nil && u.Metadata.TeamName != "" {
				s.Name = u.Metadata.TeamName
			}
		}
		if r.Settings != nil {
			s.Wins = r.Settings.Wins
			s.Losses = r.Settings.Losses
			s.Ties = r.Settings.Ties
			s.PointsFor = r.Settings.PointsFor
			s.PointsAgainst = r.Settings.PointsAgainst
		}
		standings = append(standings, s)
	}

	sortStandings(standings)
	return standings
}

// sortStandings orders by record then points and assigns ranks.
func sortStandings(standings []model.TeamStanding) {
	slices.SortStableFunc(standings, func(a, b model.TeamStanding) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return cmp.Compare(b.PointsFor, a.PointsFor)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
}
