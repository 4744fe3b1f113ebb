package db

import (
	"context"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"golang.org/x/oauth2"
)

type DB interface {
	AddLeague(ctx context.Context, l *model.League) error
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	// DeleteLeague removes the league along with its token and every cached
	// roast under it. Other leagues are unaffected.
	DeleteLeague(ctx context.Context, id int32) error
	UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error

	SaveToken(ctx context.Context, leagueID int32, t *oauth2.Token) error
	GetToken(ctx context.Context, leagueID int32) (*oauth2.Token, error)

	// SavePlayers upserts the player directory used to resolve display names
	// for platforms whose payloads carry only player ids.
	SavePlayers(ctx context.Context, players []model.Player) error
	GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error)

	// SaveRoast writes the entry keyed by (league, week), fully replacing any
	// prior entry for that key in a single statement.
	SaveRoast(ctx context.Context, entry *model.RoastEntry) error
	// GetRoast returns ErrRoastNotFound when nothing has been generated for
	// that league and week. Any other error is a storage failure, callers
	// must not treat the two the same.
	GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error)
	DeleteLeagueRoasts(ctx context.Context, leagueID int32) error
	ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error)
}
