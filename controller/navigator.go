package controller

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/nacallas/SkidmarkOS-sub001/db"
	"github.com/nacallas/SkidmarkOS-sub001/model"
)

/// WeekView is one rendered position of the navigator: the week under the
// cursor, whether the step buttons should be disabled, and the cached entry
// for that week if one exists. A nil Entry means nothing has been generated,
// navigation itself never generates.
type WeekView struct {
	Week            int  `json:"week"`
	BackDisabled    bool `json:"back_disabled"`
	ForwardDisabled bool `json:"forward_disabled"`
	// AvailableWeeks lists the weeks that have a cached entry, so a client
	// can offer jump targets without a second request.
	AvailableWeeks []int             `json:"available_weeks,omitempty"`
	Entry          *model.RoastEntry `json:"entry,omitempty"`
}

// WeekNavigator moves a cursor over a league's weeks, clamped to the range
// [1, current week]. Every arrival looks the week up in the cache and
/// nothing else: absent weeks render empty, and a storage read failure is
// logged and rendered the same as absent so browsing keeps working.
type WeekNavigator struct {
	c              *controller
	leagueID       int32
	currentWeek    int
	cursor         int
	availableWeeks []int
}

func (c *controller) NewWeekNavigator(ctx context.Context, leagueID int32) (*WeekNavigator, error) {
	l, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	settings, err := getPlatformAdapter(l.Platform, c).getLeagueSettings(ctx, l)
	if err != nil {
		return nil, fmt.Errorf("error loading settings for league %d: %w", leagueID, err)
	}

	currentWeek := settings.CurrentWeek
	if currentWeek < 1 {
		currentWeek = 1
	}

	weeks, err := c.db.ListRoastWeeks(ctx, leagueID)
	if err != nil {
		log.Printf("error listing cached weeks for league %d, navigating without them: %v", leagueID, err)
		weeks = nil
	}

	return &WeekNavigator{
		c:              c,
		leagueID:       leagueID,
		currentWeek:    currentWeek,
		cursor:         currentWeek,
		availableWeeks: weeks,
	}, nil
}

func (c *controller) GetWeekView(ctx context.Context, leagueID int32, week int) (WeekView, error) {
	n, err := c.NewWeekNavigator(ctx, leagueID)
	if err != nil {
		return WeekView{}, err
	}
	if week <= 0 {
		return n.View(ctx), nil
	}
	return n.GoTo(ctx, week), nil
}

func (n *WeekNavigator) StepBackward(ctx context.Context) WeekView {
	return n.GoTo(ctx, n.cursor-1)
}

func (n *WeekNavigator) StepForward(ctx context.Context) WeekView {
	return n.GoTo(ctx, n.cursor+1)
}

// GoTo clamps the target into range, a step at a bound stays put.
func (n *WeekNavigator) GoTo(ctx context.Context, week int) WeekView {
	if week < 1 {
		week = 1
	}
	if week > n.currentWeek {
		week = n.currentWeek
	}
	n.cursor = week
	return n.View(ctx)
}

func (n *WeekNavigator) View(ctx context.Context) WeekView {
	view := WeekView{
		Week:            n.cursor,
		BackDisabled:    n.cursor <= 1,
		ForwardDisabled: n.cursor >= n.currentWeek,
		AvailableWeeks:  n.availableWeeks,
	}

	entry, err := n.c.db.GetRoast(ctx, n.leagueID, n.cursor)
	if err != nil {
		if !errors.Is(err, db.ErrRoastNotFound) {
			log.Printf("error reading roast for league %d week %d, rendering as absent: %v", n.leagueID, n.cursor, err)
		}
		return view
	}
	view.Entry = entry
	return view
}
