package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/nacallas/SkidmarkOS-sub001/model"
)

func (db *postgresDB) SaveRoast(ctx context.Context, entry *model.RoastEntry) error {
	if entry == nil || len(entry.Roasts) == 0 {
		return errors.New("roast entry must have at least one roast")
	}

	roasts, err := json.Marshal(entry.Roasts)
	if err != nil {
		return fmt.Errorf("error marshalling roast map: %w", err)
	}

	var standings []byte
	if entry.Standings != nil {
		standings, err = json.Marshal(entry.Standings)
		if err != nil {
			return fmt.Errorf("error marshalling standings snapshot: %w", err)
		}
	}

	generated := entry.Generated
	if generated.IsZero() {
		generated = db.clock.Now().UTC()
	}

	// A single upsert keeps the replace-wholesale contract atomic, a
	// concurrent read sees either the old entry or the new one.
	const query = `INSERT INTO roasts (league_id, week, generated, roasts, standings)
					VALUES (@leagueID, @week, @generated, @roasts, @standings)
					ON CONFLICT (league_id, week)
					DO UPDATE SET generated=excluded.generated, roasts=excluded.roasts, standings=excluded.standings`

	args := pgx.NamedArgs{
		"leagueID":  entry.LeagueID,
		"week":      entry.Week,
		"generated": generated,
		"roasts":    roasts,
		"standings": standings,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving roast entry for league %d week %d: %w", entry.LeagueID, entry.Week, err)
	}
	return nil
}

func (db *postgresDB) GetRoast(ctx context.Context, leagueID int32, week int) (*model.RoastEntry, error) {
	const query = `SELECT generated, roasts, standings FROM roasts WHERE league_id=@leagueID AND week=@week`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"week":     week,
	}

	var generated pgtype.Timestamptz
	var roasts, standings []byte
	err := db.pool.QueryRow(ctx, query, args).Scan(&generated, &roasts, &standings)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoastNotFound
		}
		return nil, fmt.Errorf("error reading roast entry for league %d week %d: %w", leagueID, week, err)
	}

	entry := &model.RoastEntry{
		LeagueID:  leagueID,
		Week:      week,
		Generated: generated.Time,
	}
	if err := json.Unmarshal(roasts, &entry.Roasts); err != nil {
		return nil, fmt.Errorf("error unmarshalling roast map for league %d week %d: %w", leagueID, week, err)
	}
	if standings != nil {
		if err := json.Unmarshal(standings, &entry.Standings); err != nil {
			return nil, fmt.Errorf("error unmarshalling standings snapshot for league %d week %d: %w", leagueID, week, err)
		}
	}
	return entry, nil
}

func (db *postgresDB) DeleteLeagueRoasts(ctx context.Context, leagueID int32) error {
	const query = `DELETE FROM roasts WHERE league_id=@leagueID`

	if _, err := db.pool.Exec(ctx, query, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error deleting roasts for league %d: %w", leagueID, err)
	}
	return nil
}

func (db *postgresDB) ListRoastWeeks(ctx context.Context, leagueID int32) ([]int, error) {
	const query = `SELECT week FROM roasts WHERE league_id=@leagueID ORDER BY week`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error listing roast weeks for league %d: %w", leagueID, err)
	}
	defer rows.Close()

	weeks := make([]int, 0, 18)
	for rows.Next() {
		var w int
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("error scanning roast week: %w", err)
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}
