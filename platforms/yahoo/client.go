package yahoo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/yahoo/internal"
)

const YahooURL = "https://fantasysports.yahooapis.com"

// Client talks to the yahoo fantasy API. Requests go through the provided
// http.Client, which the caller builds from the league's oauth token.
type Client struct {
	url string
}

func New() (*Client, error) {
	return &Client{url: YahooURL}, nil
}

func NewForTest(url string) *Client {
	return &Client{url: url}
}

func (c *Client) GetLeagueName(httpClient *http.Client, leagueID string) (string, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/nfl.l.%s", leagueID)
	if err != nil {
		return "", err
	}

	if content == nil || content.League == nil || content.League.Name == "" {
		return "", errors.New("league name not found")
	}

	return content.League.Name, nil
}

func (c *Client) GetLeagueSettings(httpClient *http.Client, leagueID string) (*model.LeagueSettings, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/nfl.l.%s/settings", leagueID)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Settings == nil {
		return nil, errors.New("league has no settings")
	}

	l := content.League
	if l.CurrentWeek < 1 || l.Settings.PlayoffStartWeek < 1 || l.Settings.NumPlayoffTeams < 1 {
		return nil, fmt.Errorf("league settings are incomplete: week=%d playoff_start=%d playoff_teams=%d",
			l.CurrentWeek, l.Settings.PlayoffStartWeek, l.Settings.NumPlayoffTeams)
	}

	return &model.LeagueSettings{
		CurrentWeek:        l.CurrentWeek,
		PlayoffStartWeek:   l.Settings.PlayoffStartWeek,
		PlayoffTeamCount:   l.Settings.NumPlayoffTeams,
		RegularSeasonWeeks: l.Settings.PlayoffStartWeek - 1,
	}, nil
}

func (c *Client) GetStandings(httpClient *http.Client, leagueID string) ([]model.TeamStanding, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/nfl.l.%s/standings", leagueID)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Standings == nil ||
		content.League.Standings.Teams == nil ||
		content.League.Standings.Teams.Teams == nil {
		return nil, errors.New("league has no standings")
	}

	results := make([]model.TeamStanding, 0, 12)
	for _, t := range content.League.Standings.Teams.Teams {
		s := model.TeamStanding{
			TeamID: t.Key,
			Name:   t.Name,
		}
		if t.Managers != nil && len(t.Managers.Managers) > 0 {
			s.Owner = t.Managers.Managers[0].Nickname
		}
		if t.TeamStandings != nil {
			s.Rank = t.TeamStandings.Rank
			s.PointsFor = t.TeamStandings.PointsFor
			s.PointsAgainst = t.TeamStandings.PointsAgainst
			if t.TeamStandings.OutcomeTotals != nil {
				s.Wins = t.TeamStandings.OutcomeTotals.Wins
				s.Losses = t.TeamStandings.OutcomeTotals.Losses
				s.Ties = t.TeamStandings.OutcomeTotals.Ties
			}
			if t.TeamStandings.Streak != nil && t.TeamStandings.Streak.Value > 0 {
				prefix := "W"
				if t.TeamStandings.Streak.Type == "loss" {
					prefix = "L"
				}
				s.Streak = fmt.Sprintf("%s%d", prefix, t.TeamStandings.Streak.Value)
			}
		}
		results = append(results, s)
	}

	if len(results) == 0 {
		return nil, errors.New("league has no standings")
	}
	return results, nil
}

func (c *Client) GetMatchups(httpClient *http.Client, leagueID string, week int) ([]model.WeeklyMatchup, error) {
	matchups, err := c.getScoreboard(httpClient, leagueID, week)
	if err != nil {
		return nil, err
	}
	return normalizeMatchups(matchups, week)
}

// GetBracket reconstructs the postseason picture from the playoff-week
// scoreboards. Yahoo exposes per-matchup playoff and consolation flags
// rather than a bracket structure, so elimination falls out of who lost a
// decided playoff game and never shows up again.
func (c *Client) GetBracket(httpClient *http.Client, leagueID string, settings *model.LeagueSettings, week int) ([]model.PlayoffBracketEntry, error) {
	if settings == nil || week < settings.PlayoffStartWeek {
		return nil, errors.New("no bracket data before the playoffs")
	}

	standings, err := c.GetStandings(httpClient, leagueID)
	if err != nil {
		return nil, err
	}

	weeks := make([][]internal.Matchup, 0, week-settings.PlayoffStartWeek+1)
	for w := settings.PlayoffStartWeek; w <= week; w++ {
		matchups, err := c.getScoreboard(httpClient, leagueID, w)
		if err != nil {
			return nil, fmt.Errorf("error loading week %d scoreboard: %w", w, err)
		}
		weeks = append(weeks, matchups)
	}

	return normalizeBracket(weeks, settings, standings)
}

func (c *Client) getScoreboard(httpClient *http.Client, leagueID string, week int) ([]internal.Matchup, error) {
	content, err := c.yahooRequest(httpClient, "/fantasy/v2/league/nfl.l.%s/scoreboard;week=%d", leagueID, week)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Scoreboard == nil ||
		content.League.Scoreboard.Matchups == nil ||
		content.League.Scoreboard.Matchups.Matchups == nil {
		return nil, errors.New("league scoreboard not found")
	}

	return content.League.Scoreboard.Matchups.Matchups, nil
}

func (c *Client) yahooRequest(httpClient *http.Client, path string, args ...any) (*internal.FantasyContent, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from yahoo: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading yahoo response: %w", err)
	}

	var content internal.FantasyContent
	if err := xml.Unmarshal(body, &content); err != nil {
		return nil, fmt.Errorf("error parsing yahoo response: %w", err)
	}
	return &content, nil
}
