package sleeper

import (
	"fmt"
	"slices"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

// normalizeBracket flattens sleeper's winners and losers bracket structures
// into one entry per team. Seeds come from the current standings order since
// sleeper's bracket games carry roster ids only.
func normalizeBracket(winners, losers []bracketGame, standings []model.TeamStanding) ([]model.PlayoffBracketEntry, error) {
	if len(winners) == 0 && len(losers) == 0 {
		return nil, fmt.Errorf("no bracket data")
	}

	seeds := make(map[string]int, len(standings))
	for _, s := range standings {
		seeds[s.TeamID] = s.Rank
	}

	entries := make([]model.PlayoffBracketEntry, 0, len(standings))
	for _, b := range []struct {
		games       []bracketGame
		consolation bool
	}{
		{games: winners, consolation: false},
		{games: losers, consolation: true},
	} {
		bracketEntries, err := flattenBracket(b.games, b.consolation, seeds)
		if err != nil {
			return nil, err
		}
		entries = append(entries, bracketEntries...)
	}
	return entries, nil
}

func flattenBracket(games []bracketGame, consolation bool, seeds map[string]int) ([]model.PlayoffBracketEntry, error) {
	if len(games) == 0 {
		return nil, nil
	}

	maxRound := 0
	for _, g := range games {
		if g.Round > maxRound {
			maxRound = g.Round
		}
	}

	title := findTitleGame(games, maxRound)

	// Latest game each roster appears in. Later rounds win ties because a
	// roster plays at most one game per round.
	latest := make(map[int]bracketGame)
	for _, g := range games {
		for _, team := range []int{g.Team1, g.Team2} {
			if team == 0 {
				continue
			}
			if cur, ok := latest[team]; !ok || g.Round > cur.Round {
				latest[team] = g
			}
		}
	}

	teams := make([]int, 0, len(latest))
	for team := range latest {
		teams = append(teams, team)
	}
	// Stable output order: by seed.
	sortTeamsBySeed(teams, seeds)

	entries := make([]model.PlayoffBracketEntry, 0, len(latest))
	for _, team := range teams {
		g := latest[team]
		teamID := fmt.Sprintf("%d", team)

		opponent := ""
		if other := otherTeam(g, team); other != 0 {
			opponent = fmt.Sprintf("%d", other)
		}

		decided := g.Winner != 0
		lostLastGame := decided && g.Loser == team

		// Eliminated means the team lost its latest game with nothing left
		// to play. In the title game only a decided loss eliminates, and a
		// champion-in-waiting keeps the championship flag.
		isTitleGame := !consolation && title != nil && g.Round == title.Round && g.Match == title.Match
		championship := isTitleGame && !lostLastGame

		seed := seeds[teamID]
		if seed == 0 {
			return nil, fmt.Errorf("roster %s appears in the bracket but not in the standings", teamID)
		}

		entry, err := model.NewBracketEntry(teamID, seed, g.Round, opponent, lostLastGame, consolation, championship)
		if err != nil {
			return nil, fmt.Errorf("inconsistent bracket data: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// findTitleGame locates the game played for first place. Sleeper marks it
// with p being 1, older payloads omit p so the final round's first game is
// used instead.
func findTitleGame(games []bracketGame, maxRound int) *bracketGame {
	var fallback *bracketGame
	for i, g := range games {
		if g.Position == 1 {
			return &games[i]
		}
		if g.Round == maxRound && (fallback == nil || g.Match < fallback.Match) {
			fallback = &games[i]
		}
	}
	return fallback
}

func otherTeam(g bracketGame, team int) int {
	if g.Team1 == team {
		return g.Team2
	}
	return g.Team1
}

func sortTeamsBySeed(teams []int, seeds map[string]int) {
	slices.SortFunc(teams, func(a, b int) int {
		return seeds[fmt.Sprintf("%d", a)] - seeds[fmt.Sprintf("%d", b)]
	})
}
