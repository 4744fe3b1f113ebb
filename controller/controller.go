package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/nacallas/SkidmarkOS-sub001/db"
	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/sleeper"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/yahoo"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetLeaguesFromPlatform(ctx context.Context, username, platform, year string) ([]model.League, error)
	AddLeague(ctx context.Context, platform, externalID, name, year string) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	// DeleteLeague removes the league along with every cached roast under it.
	DeleteLeague(ctx context.Context, id int32) error
	UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error

	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	// GenerateRoasts runs the full pipeline for one league and week and
	// caches the result, replacing any earlier entry for that week.
	GenerateRoasts(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error)
	// GetRoast is read-only: it never triggers generation. A missing entry
	// surfaces as db.ErrRoastNotFound.
	GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error)
	// DeleteLeagueRoasts clears the cache for a league without touching the
	// league itself, so the next navigation starts from a clean slate.
	DeleteLeagueRoasts(ctx context.Context, leagueID int32) error
	ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error)
	// NewWeekNavigator builds a navigator positioned on the league's current
	// week. Navigation reads the cache only.
	NewWeekNavigator(ctx context.Context, leagueID int32) (*WeekNavigator, error)
	// GetWeekView is the one-shot form: position a fresh navigator on the
	// requested week (clamped) and return what it sees. week <= 0 means the
	// league's current week.
	GetWeekView(ctx context.Context, leagueID int32, week int) (WeekView, error)

	OAuthStart(platform string) (string, error)
	OAuthExchange(ctx context.Context, state, code string) error
	OAuthSave(ctx context.Context, state string, leagueID int32) error
}

type controller struct {
	clock       clock.Clock
	sleeper     sleeper.Client
	yahoo       *yahoo.Client
	yahooConfig *oauth2.Config
	generator   generator.Client
	db          db.DB

	statesMu    sync.Mutex
	oauthStates map[string]*oauthState
}

func New(clock clock.Clock, sleeper sleeper.Client, yahoo *yahoo.Client, yahooConfig *oauth2.Config, gen generator.Client, db db.DB) (C, error) {
	c := &controller{
		clock:       clock,
		sleeper:     sleeper,
		yahoo:       yahoo,
		yahooConfig: yahooConfig,
		generator:   gen,
		db:          db,
		oauthStates: make(map[string]*oauthState),
	}
	return c, nil
}

// When we need to make calls that are specific to a platform, grab a platform
// adapter and it will do it. This is internal to the controller package.
type platformAdapter interface {
	getLeagues(ctx context.Context, username, year string) ([]model.League, error)
	getLeagueSettings(ctx context.Context, l *model.League) (*model.LeagueSettings, error)
	getStandings(ctx context.Context, l *model.League) ([]model.TeamStanding, error)
	getMatchups(ctx context.Context, l *model.League, week int) ([]model.WeeklyMatchup, error)
	getBracket(ctx context.Context, l *model.League, settings *model.LeagueSettings, week int) ([]model.PlayoffBracketEntry, error)
}

func getPlatformAdapter(platform string, c *controller) platformAdapter {
	switch platform {
	case model.PlatformSleeper:
		return &sleeperAdapter{c}
	case model.PlatformYahoo:
		return &yahooAdapter{c}
	default:
		return &nilPlatformAdapter{err: fmt.Errorf("%s is not a supported platform", platform)}
	}
}

// nilPlatformAdapter exists so that we can always return an adapter and simplify
// the usage. It eliminates the need for an extra error check.
type nilPlatformAdapter struct {
	err error
}

func (a *nilPlatformAdapter) getLeagues(ctx context.Context, username, year string) ([]model.League, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getLeagueSettings(ctx context.Context, l *model.League) (*model.LeagueSettings, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getStandings(ctx context.Context, l *model.League) ([]model.TeamStanding, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getMatchups(ctx context.Context, l *model.League, week int) ([]model.WeeklyMatchup, error) {
	return nil, a.err
}

func (a *nilPlatformAdapter) getBracket(ctx context.Context, l *model.League, settings *model.LeagueSettings, week int) ([]model.PlayoffBracketEntry, error) {
	return nil, a.err
}
