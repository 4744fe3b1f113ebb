package sleeper

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

const SleeperURL = "https://api.sleeper.app"

// NameResolver maps player ids to directory records for payloads that carry
// ids without names. Ids missing from the result map fall back to a
// placeholder name.
type NameResolver func(ids []string) (map[string]model.Player, error)

type Client interface {
	LoadPlayers() ([]model.Player, error)
	GetUserID(username string) (string, error)
	GetLeaguesForUser(userID, year string) ([]model.League, error)
	GetLeagueSettings(leagueID string) (*model.LeagueSettings, error)
	GetMatchups(leagueID string, week int, resolve NameResolver) ([]model.WeeklyMatchup, error)
	GetStandings(leagueID string) ([]model.TeamStanding, error)
	GetBracket(leagueID string) ([]model.PlayoffBracketEntry, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN || (p.FirstName == "Player" && p.LastName == "Invalid") {
			continue
		}
		result = append(result, *p.toPlayer())
	}

	return result, nil
}

func (c *client) GetUserID(username string) (string, error) {
	var parsed *sleeperUser
	if err := c.get(fmt.Sprintf("/v1/user/%s", username), &parsed); err != nil {
		return "", err
	}
	// Sleeper returns a 200 with a "null" body for unknown usernames.
	if parsed == nil || parsed.UserID == "" {
		return "", fmt.Errorf("user not found")
	}
	return parsed.UserID, nil
}

func (c *client) GetLeaguesForUser(userID, year string) ([]model.League, error) {
	var parsed []sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", userID, year), &parsed); err != nil {
		return nil, err
	}

	results := make([]model.League, 0, len(parsed))
	for _, l := range parsed {
		results = append(results, model.League{
			Platform:   model.PlatformSleeper,
			ExternalID: l.LeagueID,
			Name:       l.Name,
			Year:       l.Season,
		})
	}
	return results, nil
}

func (c *client) GetLeagueSettings(leagueID string) (*model.LeagueSettings, error) {
	var league sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/league/%s", leagueID), &league); err != nil {
		return nil, err
	}
	if league.Settings == nil || league.Settings.PlayoffWeekStart < 1 || league.Settings.PlayoffTeams < 1 {
		return nil, fmt.Errorf("league %s has no playoff settings", leagueID)
	}

	var state sleeperState
	if err := c.get("/v1/state/nfl", &state); err != nil {
		return nil, err
	}
	if state.Week < 1 {
		return nil, fmt.Errorf("sleeper reported an invalid current week: %d", state.Week)
	}

	return &model.LeagueSettings{
		CurrentWeek:        state.Week,
		PlayoffStartWeek:   league.Settings.PlayoffWeekStart,
		PlayoffTeamCount:   league.Settings.PlayoffTeams,
		RegularSeasonWeeks: league.Settings.PlayoffWeekStart - 1,
	}, nil
}

func (c *client) GetMatchups(leagueID string, week int, resolve NameResolver) ([]model.WeeklyMatchup, error) {
	var parsed []sleeperMatchup
	if err := c.get(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	return normalizeMatchups(parsed, week, resolve)
}

func (c *client) GetStandings(leagueID string) ([]model.TeamStanding, error) {
	rosters, users, err := c.getRostersAndUsers(leagueID)
	if err != nil {
		return nil, err
	}
	return buildStandings(rosters, users), nil
}

func (c *client) GetBracket(leagueID string) ([]model.PlayoffBracketEntry, error) {
	var winners, losers []bracketGame
	if err := c.get(fmt.Sprintf("/v1/league/%s/winners_bracket", leagueID), &winners); err != nil {
		return nil, err
	}
	if err := c.get(fmt.Sprintf("/v1/league/%s/losers_bracket", leagueID), &losers); err != nil {
		return nil, err
	}

	rosters, users, err := c.getRostersAndUsers(leagueID)
	if err != nil {
		return nil, err
	}
	standings := buildStandings(rosters, users)

	return normalizeBracket(winners, losers, standings)
}

func (c *client) getRostersAndUsers(leagueID string) ([]sleeperRoster, []sleeperUser, error) {
	var rosters []sleeperRoster
	if err := c.get(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &rosters); err != nil {
		return nil, nil, err
	}
	var users []sleeperUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &users); err != nil {
		return nil, nil, err
	}
	return rosters, users, nil
}

func (c *client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from sleeper: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
