package sleeper

import (
	"fmt"
	"slices"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

// normalizeMatchups pairs the per-roster entries sleeper returns into
// canonical matchups. Sleeper payloads carry player ids only, display names
// come from the resolver with a placeholder fallback.
func normalizeMatchups(parsed []sleeperMatchup, week int, resolve NameResolver) ([]model.WeeklyMatchup, error) {
	if len(parsed) == 0 {
		return nil, fmt.Errorf("no matchup data for week %d", week)
	}

	players, err := resolvePlayers(parsed, resolve)
	if err != nil {
		return nil, err
	}

	pairs := make(map[int][]sleeperMatchup)
	for _, m := range parsed {
		// A matchup_id of 0 means the roster is on a bye or the league
		// has no game scheduled for it this week.
		if m.MatchupID == 0 {
			continue
		}
		pairs[m.MatchupID] = append(pairs[m.MatchupID], m)
	}

	ids := make([]int, 0, len(pairs))
	for id := range pairs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	results := make([]model.WeeklyMatchup, 0, len(pairs))
	for _, id := range ids {
		pair := pairs[id]
		if len(pair) != 2 {
			return nil, fmt.Errorf("matchup %d has %d rosters, expected 2", id, len(pair))
		}

		// Keep the pairing deterministic regardless of payload order.
		home, away := pair[0], pair[1]
		if away.RosterID < home.RosterID {
			home, away = away, home
		}

		matchup := model.WeeklyMatchup{
			Week:        week,
			HomeTeamID:  fmt.Sprintf("%d", home.RosterID),
			AwayTeamID:  fmt.Sprintf("%d", away.RosterID),
			HomeScore:   home.Points,
			AwayScore:   away.Points,
			HomePlayers: normalizePlayers(home, players),
			AwayPlayers: normalizePlayers(away, players),
		}
		if err := matchup.Validate(); err != nil {
			return nil, fmt.Errorf("invalid matchup %d for week %d: %w", id, week, err)
		}
		results = append(results, matchup)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("no matchup data for week %d", week)
	}
	return results, nil
}

func resolvePlayers(parsed []sleeperMatchup, resolve NameResolver) (map[string]model.Player, error) {
	seen := make(map[string]bool)
	ids := make([]string, 0, 32)
	for _, m := range parsed {
		for _, id := range m.Players {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	if resolve == nil {
		return map[string]model.Player{}, nil
	}
	players, err := resolve(ids)
	if err != nil {
		return nil, fmt.Errorf("error resolving player names: %w", err)
	}
	return players, nil
}

func normalizePlayers(m sleeperMatchup, players map[string]model.Player) []model.WeeklyPlayerStats {
	starters := make(map[string]bool, len(m.Starters))
	for _, id := range m.Starters {
		starters[id] = true
	}

	stats := make([]model.WeeklyPlayerStats, 0, len(m.Players))
	for _, id := range m.Players {
		s := model.WeeklyPlayerStats{
			PlayerID:  id,
			Name:      fmt.Sprintf("Player %s", id),
			Position:  model.POS_UNKNOWN,
			Points:    m.PlayersPoints[id],
			IsStarter: starters[id],
		}
		if p, ok := players[id]; ok {
			s.Name = p.Name
			s.Position = p.Position
		}
		stats = append(stats, s)
	}
	return stats
}
