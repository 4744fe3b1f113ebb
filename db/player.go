package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nacallas/SkidmarkOS-sub001/model"
)

func (db *postgresDB) SavePlayers(ctx context.Context, players []model.Player) error {
	if len(players) == 0 {
		return nil
	}

	const query = `INSERT INTO players (id, name, position, team, updated)
					VALUES (@id, @name, @position, @team, @updated)
					ON CONFLICT (id)
					DO UPDATE SET name=excluded.name, position=excluded.position,
						team=excluded.team, updated=excluded.updated`

	now := db.clock.Now().UTC()
	batch := &pgx.Batch{}
	for _, p := range players {
		batch.Queue(query, pgx.NamedArgs{
			"id":       p.ID,
			"name":     p.Name,
			"position": string(p.Position),
			"team":     p.Team,
			"updated":  now,
		})
	}

	results := db.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range players {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("error upserting player: %w", err)
		}
	}
	return nil
}

// GetPlayers resolves the subset of ids present in the directory. Ids with
// no entry are simply missing from the result map, the caller decides the
// fallback.
func (db *postgresDB) GetPlayers(ctx context.Context, ids []string) (map[string]model.Player, error) {
	if len(ids) == 0 {
		return map[string]model.Player{}, nil
	}

	const query = `SELECT id, name, position, COALESCE(team, '') FROM players WHERE id = ANY(@ids)`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("error querying players: %w", err)
	}
	defer rows.Close()

	players := make(map[string]model.Player, len(ids))
	for rows.Next() {
		var p model.Player
		var pos string
		if err := rows.Scan(&p.ID, &p.Name, &pos, &p.Team); err != nil {
			return nil, fmt.Errorf("error scanning player: %w", err)
		}
		p.Position = model.ParsePosition(pos)
		players[p.ID] = p
	}
	return players, rows.Err()
}
