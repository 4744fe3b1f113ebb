package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

const yearOnlyFormat = "2006"

func (c *controller) GetLeaguesFromPlatform(ctx context.Context, username, platform, year string) ([]model.League, error) {
	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	return getPlatformAdapter(platform, c).getLeagues(ctx, username, year)
}

func (c *controller) AddLeague(ctx context.Context, platform, externalID, name, year string) (*model.League, error) {
	if !model.IsPlatformSupported(platform) {
		return nil, fmt.Errorf("%s is not a supported platform", platform)
	}

	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errors.New("externalID must be provided")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}

	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	l := &model.League{
		Platform:   platform,
		ExternalID: externalID,
		Name:       name,
		Year:       year,
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

// DeleteLeague drops the league row, which cascades to its stored token and
// all of its cached roasts.
func (c *controller) DeleteLeague(ctx context.Context, id int32) error {
	return c.db.DeleteLeague(ctx, id)
}

func (c *controller) UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error {
	if lc == nil {
		return errors.New("league context must be provided")
	}
	return c.db.UpdateLeagueContext(ctx, id, lc)
}
