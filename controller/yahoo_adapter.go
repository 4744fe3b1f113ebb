package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

type yahooAdapter struct {
	c *controller
}

// httpClient builds an authorized client from the league's stored token,
// refreshing it first if it has expired.
func (a *yahooAdapter) httpClient(ctx context.Context, leagueID int32) (*http.Client, error) {
	t, err := a.c.getToken(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return a.c.yahooConfig.Client(ctx, t), nil
}

func (a *yahooAdapter) getLeagues(ctx context.Context, username, year string) ([]model.League, error) {
	return nil, errors.New("league discovery is not supported for yahoo, add leagues by id")
}

func (a *yahooAdapter) getLeagueSettings(ctx context.Context, l *model.League) (*model.LeagueSettings, error) {
	httpClient, err := a.httpClient(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return a.c.yahoo.GetLeagueSettings(httpClient, l.ExternalID)
}

func (a *yahooAdapter) getStandings(ctx context.Context, l *model.League) ([]model.TeamStanding, error) {
	httpClient, err := a.httpClient(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return a.c.yahoo.GetStandings(httpClient, l.ExternalID)
}

func (a *yahooAdapter) getMatchups(ctx context.Context, l *model.League, week int) ([]model.WeeklyMatchup, error) {
	httpClient, err := a.httpClient(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return a.c.yahoo.GetMatchups(httpClient, l.ExternalID, week)
}

func (a *yahooAdapter) getBracket(ctx context.Context, l *model.League, settings *model.LeagueSettings, week int) ([]model.PlayoffBracketEntry, error) {
	httpClient, err := a.httpClient(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	return a.c.yahoo.GetBracket(httpClient, l.ExternalID, settings, week)
}
