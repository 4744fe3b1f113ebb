package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/prompt"
)

// GenerateRoasts runs the whole pipeline: platform fetches, prompt assembly,
// the generation call, and the cache write. Matchup and bracket fetches are
// best effort, a failure there degrades the prompt rather than failing the
// run. Settings failures downgrade to regular season. Standings and the
// generation call itself are required.
func (c *controller) GenerateRoasts(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	if week < 1 {
		return nil, fmt.Errorf("week must be positive, got %d", week)
	}

	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	adapter := getPlatformAdapter(l.Platform, c)

	phase := model.PhaseRegularSeason
	settings, err := adapter.getLeagueSettings(ctx, l)
	if err != nil {
		log.Printf("error loading settings for league %d, assuming regular season: %v", leagueID, err)
		settings = nil
	} else {
		phase = model.ClassifyPhase(week, settings.PlayoffStartWeek)
	}

	standings, err := adapter.getStandings(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("error loading standings for league %d: %w", leagueID, err)
	}
	if len(standings) == 0 {
		return nil, fmt.Errorf("league %d has no teams to roast", leagueID)
	}

	matchups, err := adapter.getMatchups(ctx, l, week)
	if err != nil {
		log.Printf("error loading week %d matchups for league %d, roasting without them: %v", week, leagueID, err)
		matchups = nil
	}

	var bracket []model.PlayoffBracketEntry
	if phase == model.PhasePlayoffs {
		bracket, err = adapter.getBracket(ctx, l, settings, week)
		if err != nil {
			log.Printf("error loading bracket for league %d, roasting without it: %v", leagueID, err)
			bracket = nil
		}
	}

	req := &generator.Request{
		WeekNumber:     week,
		SeasonPhase:    phase,
		Teams:          standings,
		Context:        l.Context,
		Matchups:       matchups,
		PlayoffBracket: bracket,
	}
	req.Prompt = prompt.Build(req)

	roasts, err := c.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error generating roasts for league %d week %d: %w", leagueID, week, err)
	}

	entry := &model.RoastEntry{
		LeagueID:  leagueID,
		Week:      week,
		Generated: c.clock.Now().UTC(),
		Roasts:    roasts,
		Standings: standings,
	}
	if err := c.db.SaveRoast(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *controller) GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	return c.db.GetRoast(ctx, leagueID, week)
}

func (c *controller) DeleteLeagueRoasts(ctx context.Context, leagueID int32) error {
	if _, err := c.db.GetLeague(ctx, leagueID); err != nil {
		return err
	}
	return c.db.DeleteLeagueRoasts(ctx, leagueID)
}

func (c *controller) ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	return c.db.ListRoastWeeks(ctx, leagueID)
}
