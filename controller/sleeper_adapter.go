package controller

import (
	"context"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

type sleeperAdapter struct {
	c *controller
}

func (a *sleeperAdapter) getLeagues(ctx context.Context, username, year string) ([]model.League, error) {
	userID, err := a.c.sleeper.GetUserID(username)
	if err != nil {
		return nil, err
	}

	return a.c.sleeper.GetLeaguesForUser(userID, year)
}

func (a *sleeperAdapter) getLeagueSettings(ctx context.Context, l *model.League) (*model.LeagueSettings, error) {
	return a.c.sleeper.GetLeagueSettings(l.ExternalID)
}

func (a *sleeperAdapter) getStandings(ctx context.Context, l *model.League) ([]model.TeamStanding, error) {
	return a.c.sleeper.GetStandings(l.ExternalID)
}

// getMatchups resolves player names through the stored player directory.
// Sleeper matchup payloads carry ids only.
func (a *sleeperAdapter) getMatchups(ctx context.Context, l *model.League, week int) ([]model.WeeklyMatchup, error) {
	resolve := func(ids []string) (map[string]model.Player, error) {
		return a.c.db.GetPlayers(ctx, ids)
	}
	return a.c.sleeper.GetMatchups(l.ExternalID, week, resolve)
}

// Sleeper brackets are season-scoped, so the adapter's week goes unused here.
func (a *sleeperAdapter) getBracket(ctx context.Context, l *model.League, settings *model.LeagueSettings, week int) ([]model.PlayoffBracketEntry, error) {
	return a.c.sleeper.GetBracket(l.ExternalID)
}
