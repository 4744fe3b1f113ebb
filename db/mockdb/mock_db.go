package mockdb

import (
	"context"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

type DB struct {
	mock.Mock
}

func (db *DB) AddLeague(ctx context.Context, l *model.League) error {
	args := db.Called(ctx, l)
	return args.Error(0)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) DeleteLeague(ctx context.Context, id int32) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error {
	args := db.Called(ctx, id, lc)
	return args.Error(0)
}

func (db *DB) SaveToken(ctx context.Context, leagueID int32, t *oauth2.Token) error {
	args := db.Called(ctx, leagueID, t)
	return args.Error(0)
}

func (db *DB) GetToken(ctx context.Context, leagueID int32) (*oauth2.Token, error) {
	args := db.Called(ctx, leagueID)

	var t *oauth2.Token
	if args.Get(0) != nil {
		t = args.Get(0).(*oauth2.Token)
	}
	return t, args.Error(1)
}

func (db *DB) SavePlayers(ctx context.Context, players []model.Player) error {
	args := db.Called(ctx, players)
	return args.Error(0)
}

func (db *DB) GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error) {
	args := db.Called(ctx, ids)

	var players map[string]model.Player
	if args.Get(0) != nil {
		players = args.Get(0).(map[string]model.Player)
	}
	return players, args.Error(1)
}

func (db *DB) SaveRoast(ctx context.Context, entry *model.RoastEntry) error {
	args := db.Called(ctx, entry)
	return args.Error(0)
}

func (db *DB) GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	args := db.Called(ctx, leagueID, week)

	var e *model.RoastEntry
	if args.Get(0) != nil {
		e = args.Get(0).(*model.RoastEntry)
	}
	return e, args.Error(1)
}

func (db *DB) DeleteLeagueRoasts(ctx context.Context, leagueID int32) error {
	args := db.Called(ctx, leagueID)
	return args.Error(0)
}

func (db *DB) ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	args := db.Called(ctx, leagueID)

	var weeks []int
	if args.Get(0) != nil {
		weeks = args.Get(0).([]int)
	}
	return weeks, args.Error(1)
}
