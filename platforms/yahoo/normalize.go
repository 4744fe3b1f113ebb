package yahoo

import (
	"errors"
	"fmt"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/yahoo/internal"
)

func normalizeMatchups(matchups []internal.Matchup, week int) ([]model.WeeklyMatchup, error) {
	if len(matchups) == 0 {
		return nil, fmt.Errorf("no matchup data for week %d", week)
	}

	results := make([]model.WeeklyMatchup, 0, len(matchups))
	for _, m := range matchups {
		if err := validateTeams(m.Teams); err != nil {
			return nil, err
		}

		home := m.Teams.Teams[0]
		away := m.Teams.Teams[1]
		matchup := model.WeeklyMatchup{
			Week:        week,
			HomeTeamID:  home.Key,
			AwayTeamID:  away.Key,
			HomeScore:   home.TeamPoints.Total,
			AwayScore:   away.TeamPoints.Total,
			HomePlayers: normalizeRoster(home.Roster),
			AwayPlayers: normalizeRoster(away.Roster),
		}
		if err := matchup.Validate(); err != nil {
			return nil, fmt.Errorf("invalid matchup for week %d: %w", week, err)
		}
		results = append(results, matchup)
	}

	return results, nil
}

func validateTeams(teams *internal.Teams) error {
	if teams == nil || len(teams.Teams) != 2 {
		return errors.New("invalid teams in result")
	}
	for _, t := range teams.Teams {
		if t.Key == "" || t.TeamPoints == nil {
			return errors.New("invalid team in results")
		}
	}
	return nil
}

// normalizeRoster flattens a yahoo roster into stat lines. Yahoo carries
// names inline so there is no directory lookup on this platform.
func normalizeRoster(roster *internal.Roster) []model.WeeklyPlayerStats {
	if roster == nil || roster.Players == nil {
		return nil
	}

	stats := make([]model.WeeklyPlayerStats, 0, len(roster.Players.Players))
	for _, p := range roster.Players.Players {
		s := model.WeeklyPlayerStats{
			PlayerID: p.Key,
			Position: model.ParsePosition(p.Position),
		}
		if p.Name != nil && p.Name.Full != "" {
			s.Name = p.Name.Full
		} else {
			s.Name = fmt.Sprintf("Player %s", p.ID)
		}
		if p.PlayerPoints != nil {
			s.Points = p.PlayerPoints.Total
		}
		if p.SelectedPosition != nil {
			pos := p.SelectedPosition.Position
			s.IsStarter = pos != "" && pos != "BN" && pos != "IR"
		}
		stats = append(stats, s)
	}
	return stats
}

// normalizeBracket walks the playoff-week scoreboards in order. weeks[0] is
// the playoff start week. A team is eliminated once it loses a decided
// win-or-go-home game and has no game in a later week.
func normalizeBracket(weeks [][]internal.Matchup, settings *model.LeagueSettings, standings []model.TeamStanding) ([]model.PlayoffBracketEntry, error) {
	seeds := make(map[string]int, len(standings))
	for _, s := range standings {
		seeds[s.TeamID] = s.Rank
	}

	type teamState struct {
		round       int
		opponent    string
		consolation bool
		lost        bool
	}
	states := make(map[string]*teamState)
	order := make([]string, 0, len(standings))

	finalRound := playoffRounds(settings.PlayoffTeamCount)

	for i, matchups := range weeks {
		round := i + 1
		for _, m := range matchups {
			if m.IsPlayoffs != 1 {
				continue
			}
			if err := validateTeams(m.Teams); err != nil {
				return nil, err
			}

			a := m.Teams.Teams[0]
			b := m.Teams.Teams[1]
			decided := m.Status == "postevent"

			for _, pair := range []struct {
				team, opp internal.Team
			}{
				{team: a, opp: b},
				{team: b, opp: a},
			} {
				st, ok := states[pair.team.Key]
				if !ok {
					st = &teamState{}
					states[pair.team.Key] = st
					order = append(order, pair.team.Key)
				}
				st.round = round
				st.opponent = pair.opp.Key
				st.consolation = m.IsConsolation == 1
				st.lost = decided && pair.team.TeamPoints.Total < pair.opp.TeamPoints.Total
			}
		}
	}

	if len(states) == 0 {
		return nil, errors.New("no bracket data")
	}

	entries := make([]model.PlayoffBracketEntry, 0, len(states))
	for _, key := range order {
		st := states[key]
		seed := seeds[key]
		if seed == 0 {
			return nil, fmt.Errorf("team %s appears in the playoffs but not in the standings", key)
		}

		championship := !st.consolation && st.round == finalRound && !st.lost
		eliminated := st.lost

		entry, err := model.NewBracketEntry(key, seed, st.round, st.opponent, eliminated, st.consolation, championship)
		if err != nil {
			return nil, fmt.Errorf("inconsistent bracket data: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

// playoffRounds is the number of rounds a single elimination bracket needs
// for the given team count.
func playoffRounds(teams int) int {
	rounds := 0
	for n := 1; n < teams; n *= 2 {
		rounds++
	}
	return rounds
}
