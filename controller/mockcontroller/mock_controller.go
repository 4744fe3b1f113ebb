package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/controller"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetLeaguesFromPlatform(ctx context.Context, username, platform, year string) ([]model.League, error) {
	args := c.Called(ctx, username, platform, year)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, platform, externalID, name, year string) (*model.League, error) {
	args := c.Called(ctx, platform, externalID, name, year)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}
	return res, args.Error(1)
}

func (c *C) DeleteLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error {
	args := c.Called(ctx, id, lc)
	return args.Error(0)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) GenerateRoasts(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	args := c.Called(ctx, leagueID, week)

	var e *model.RoastEntry
	if args.Get(0) != nil {
		e = args.Get(0).(*model.RoastEntry)
	}
	return e, args.Error(1)
}

func (c *C) GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	args := c.Called(ctx, leagueID, week)

	var e *model.RoastEntry
	if args.Get(0) != nil {
		e = args.Get(0).(*model.RoastEntry)
	}
	return e, args.Error(1)
}

func (c *C) DeleteLeagueRoasts(ctx context.Context, leagueID int32) error {
	args := c.Called(ctx, leagueID)
	return args.Error(0)
}

func (c *C) ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	args := c.Called(ctx, leagueID)

	var weeks []int
	if args.Get(0) != nil {
		weeks = args.Get(0).([]int)
	}
	return weeks, args.Error(1)
}

func (c *C) NewWeekNavigator(ctx context.Context, leagueID int32) (*controller.WeekNavigator, error) {
	args := c.Called(ctx, leagueID)

	var n *controller.WeekNavigator
	if args.Get(0) != nil {
		n = args.Get(0).(*controller.WeekNavigator)
	}
	return n, args.Error(1)
}

func (c *C) GetWeekView(ctx context.Context, leagueID int32, week int) (controller.WeekView, error) {
	args := c.Called(ctx, leagueID, week)

	var v controller.WeekView
	if args.Get(0) != nil {
		v = args.Get(0).(controller.WeekView)
	}
	return v, args.Error(1)
}

func (c *C) OAuthStart(platform string) (string, error) {
	args := c.Called(platform)
	return args.String(0), args.Error(1)
}

func (c *C) OAuthExchange(ctx context.Context, state, code string) error {
	args := c.Called(ctx, state, code)
	return args.Error(0)
}

func (c *C) OAuthSave(ctx context.Context, state string, leagueID int32) error {
	args := c.Called(ctx, state, leagueID)
	return args.Error(0)
}
