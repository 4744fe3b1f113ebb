package internal

type FantasyContent struct {
	League *League `xml:"league"`
}

type League struct {
	Key         string      `xml:"league_key"`
	Name        string      `xml:"name"`
	CurrentWeek int         `xml:"current_week"`
	EndWeek     int         `xml:"end_week"`
	Settings    *Settings   `xml:"settings"`
	Standings   *Standings  `xml:"standings"`
	Scoreboard  *Scoreboard `xml:"scoreboard"`
}

type Settings struct {
	PlayoffStartWeek int `xml:"playoff_start_week"`
	NumPlayoffTeams  int `xml:"num_playoff_teams"`
}

type Standings struct {
	Teams *Teams `xml:"teams"`
}

type Scoreboard struct {
	Week     int       `xml:"week"`
	Matchups *Matchups `xml:"matchups"`
}

type Matchups struct {
	Matchups []Matchup `xml:"matchup"`
}

type Matchup struct {
	Week          int    `xml:"week"`
	Status        string `xml:"status"`
	IsPlayoffs    int    `xml:"is_playoffs"`
	IsConsolation int    `xml:"is_consolation"`
	Teams         *Teams `xml:"teams"`
}

type Teams struct {
	Teams []Team `xml:"team"`
}

type Team struct {
	Key           string         `xml:"team_key"`
	Name          string         `xml:"name"`
	Managers      *Managers      `xml:"managers"`
	TeamPoints    *TeamPoints    `xml:"team_points"`
	TeamStandings *TeamStandings `xml:"team_standings"`
	Roster        *Roster        `xml:"roster"`
}

type Managers struct {
	Managers []Manager `xml:"manager"`
}

type Manager struct {
	Nickname string `xml:"nickname"`
}

type TeamPoints struct {
	Total float64 `xml:"total"`
}

type TeamStandings struct {
	Rank          int            `xml:"rank"`
	OutcomeTotals *OutcomeTotals `xml:"outcome_totals"`
	PointsFor     float64        `xml:"points_for"`
	PointsAgainst float64        `xml:"points_against"`
	Streak        *Streak        `xml:"streak"`
}

type OutcomeTotals struct {
	Wins   int `xml:"wins"`
	Losses int `xml:"losses"`
	Ties   int `xml:"ties"`
}

type Streak struct {
	Type  string `xml:"type"`
	Value int    `xml:"value"`
}

type Roster struct {
	Players *Players `xml:"players"`
}

type Players struct {
	Players []Player `xml:"player"`
}

type Player struct {
	Key              string            `xml:"player_key"`
	ID               string            `xml:"player_id"`
	Name             *PlayerName       `xml:"name"`
	Position         string            `xml:"primary_position"`
	SelectedPosition *SelectedPosition `xml:"selected_position"`
	PlayerPoints     *PlayerPoints     `xml:"player_points"`
}

type PlayerName struct {
	Full  string `xml:"full"`
	First string `xml:"first"`
	Last  string `xml:"last"`
}

type SelectedPosition struct {
	Position string `xml:"position"`
}

type PlayerPoints struct {
	Total float64 `xml:"total"`
}
