package model

var PlatformSleeper = "sleeper"
var PlatformYahoo = "yahoo"

func IsPlatformSupported(platform string) bool {
	return platform == PlatformSleeper || platform == PlatformYahoo
}

type League struct {
	ID         int32          `json:"id"`
	Platform   string         `json:"platform"`
	ExternalID string         `json:"external_id"`
	Name       string         `json:"name"`
	Year       string         `json:"year"`
	Context    *LeagueContext `json:"context,omitempty"`
}

// LeagueSettings is the source of truth for phase classification and for
// the week navigator's upper bound.
type LeagueSettings struct {
	CurrentWeek        int
	PlayoffStartWeek   int
	PlayoffTeamCount   int
	RegularSeasonWeeks int
}

// LeagueContext holds the custom flavor a league has set up for its roasts.
// All fields are optional.
type LeagueContext struct {
	InsideJokes     []InsideJoke  `json:"inside_jokes,omitempty"`
	Personalities   []Personality `json:"personalities,omitempty"`
	SackoPunishment string        `json:"sacko_punishment,omitempty"`
	CultureNotes    string        `json:"culture_notes,omitempty"`
}

type InsideJoke struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
}

type Personality struct {
	PlayerName  string `json:"player_name"`
	Description string `json:"description"`
}

// TeamStanding is one team's place in the league at a point in time. A slice
// of these, ordered by rank, is what gets snapshotted into a roast cache
// entry so historical weeks can be rendered without re-fetching.
type TeamStanding struct {
	TeamID        string  `json:"team_id"`
	Name          string  `json:"name"`
	Owner         string  `json:"owner,omitempty"`
	Rank          int     `json:"rank"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties,omitempty"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	Streak        string  `json:"streak,omitempty"`
}
