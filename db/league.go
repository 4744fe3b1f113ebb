package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"golang.org/x/oauth2"
)

func (db *postgresDB) AddLeague(ctx context.Context, l *model.League) error {
	const query = `INSERT INTO leagues (platform, external_id, name, year, created)
					VALUES (@platform, @externalID, @name, @year, @created)
					RETURNING id`

	args := pgx.NamedArgs{
		"platform":   l.Platform,
		"externalID": l.ExternalID,
		"name":       l.Name,
		"year":       l.Year,
		"created":    db.clock.Now().UTC(),
	}
	if err := db.pool.QueryRow(ctx, query, args).Scan(&l.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}
	return nil
}

func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, platform, external_id, name, year, context FROM leagues WHERE id=@id`

	l, err := scanLeague(db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error reading league %d: %w", id, err)
	}
	return l, nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, platform, external_id, name, year, context FROM leagues ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}
	defer rows.Close()

	results := make([]model.League, 0, 4)
	for rows.Next() {
		l, err := scanLeague(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		results = append(results, *l)
	}
	return results, rows.Err()
}

func (db *postgresDB) DeleteLeague(ctx context.Context, id int32) error {
	// Tokens and roasts are removed by ON DELETE CASCADE.
	const query = `DELETE FROM leagues WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) UpdateLeagueContext(ctx context.Context, id int32, lc *model.LeagueContext) error {
	var contextJSON []byte
	if lc != nil {
		var err error
		contextJSON, err = json.Marshal(lc)
		if err != nil {
			return fmt.Errorf("error marshalling league context: %w", err)
		}
	}

	const query = `UPDATE leagues SET context=@context WHERE id=@id`

	tag, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"id": id, "context": contextJSON})
	if err != nil {
		return fmt.Errorf("error updating context for league %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

func (db *postgresDB) SaveToken(ctx context.Context, leagueID int32, t *oauth2.Token) error {
	const query = `INSERT INTO league_tokens (league_id, access_token, refresh_token, token_type, expiry)
					VALUES (@leagueID, @accessToken, @refreshToken, @tokenType, @expiry)
					ON CONFLICT (league_id)
					DO UPDATE SET access_token=excluded.access_token, refresh_token=excluded.refresh_token,
						token_type=excluded.token_type, expiry=excluded.expiry`

	args := pgx.NamedArgs{
		"leagueID":     leagueID,
		"accessToken":  t.AccessToken,
		"refreshToken": t.RefreshToken,
		"tokenType":    t.TokenType,
		"expiry":       t.Expiry,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving token for league %d: %w", leagueID, err)
	}
	return nil
}

func (db *postgresDB) GetToken(ctx context.Context, leagueID int32) (*oauth2.Token, error) {
	const query = `SELECT access_token, refresh_token, token_type, expiry FROM league_tokens WHERE league_id=@leagueID`

	var t oauth2.Token
	var expiry pgtype.Timestamptz
	err := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"leagueID": leagueID}).
		Scan(&t.AccessToken, &t.RefreshToken, &t.TokenType, &expiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("error reading token for league %d: %w", leagueID, err)
	}
	t.Expiry = expiry.Time
	return &t, nil
}

func scanLeague(row pgx.Row) (*model.League, error) {
	var result model.League
	var contextJSON []byte
	if err := row.Scan(&result.ID, &result.Platform, &result.ExternalID, &result.Name, &result.Year, &contextJSON); err != nil {
		return nil, err
	}
	if contextJSON != nil {
		result.Context = &model.LeagueContext{}
		if err := json.Unmarshal(contextJSON, result.Context); err != nil {
			return nil, fmt.Errorf("error unmarshalling league context: %w", err)
		}
	}
	return &result, nil
}
