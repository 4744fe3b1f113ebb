package sleeper

import (
	"errors"
	"strings"
	"testing"

	"github.com/nacallas/SkidmarkOS-sub001/model"
)

func testResolver(players map[string]model.Player) NameResolver {
	return func(ids []string) (map[string]model.Player, error) {
		return players, nil
	}
}

var testDirectory = map[string]model.Player{
	"p1": {ID: "p1", Name: "Josh Allen", Position: model.POS_QB},
	"p2": {ID: "p2", Name: "Saquon Barkley", Position: model.POS_RB},
	"p3": {ID: "p3", Name: "Justin Jefferson", Position: model.POS_WR},
}

func TestNormalizeMatchups(t *testing.T) {
	parsed := []sleeperMatchup{
		{RosterID: 2, MatchupID: 1, Points: 98.2, Players: []string{"p2", "p3"}, Starters: []string{"p2"},
			PlayersPoints: map[string]float64{"p2": 22.1, "p3": 14.8}},
		{RosterID: 1, MatchupID: 1, Points: 112.5, Players: []string{"p1"}, Starters: []string{"p1"},
			PlayersPoints: map[string]float64{"p1": 28.4}},
	}

	matchups, err := normalizeMatchups(parsed, 3, testResolver(testDirectory))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 1 {
		t.Fatalf("expected 1 matchup, got %d", len(matchups))
	}

	m := matchups[0]
	// The lower roster id is home regardless of payload order.
	if m.HomeTeamID != "1" || m.AwayTeamID != "2" {
		t.Errorf("unexpected pairing: %s vs %s", m.HomeTeamID, m.AwayTeamID)
	}
	if m.HomeScore != 112.5 || m.AwayScore != 98.2 {
		t.Errorf("unexpected scores: %f, %f", m.HomeScore, m.AwayScore)
	}
	if m.Week != 3 {
		t.Errorf("unexpected week: %d", m.Week)
	}

	if len(m.HomePlayers) != 1 || m.HomePlayers[0].Name != "Josh Allen" || !m.HomePlayers[0].IsStarter {
		t.Errorf("home players not normalized: %+v", m.HomePlayers)
	}
	if len(m.AwayPlayers) != 2 {
		t.Fatalf("expected 2 away players, got %d", len(m.AwayPlayers))
	}
	if m.AwayPlayers[0].Points != 22.1 || m.AwayPlayers[0].Position != model.POS_RB {
		t.Errorf("away starter not normalized: %+v", m.AwayPlayers[0])
	}
	if m.AwayPlayers[1].IsStarter {
		t.Errorf("p3 is on the bench but was marked a starter")
	}
}

func TestNormalizeMatchups_nameFallback(t *testing.T) {
	parsed := []sleeperMatchup{
		{RosterID: 1, MatchupID: 1, Points: 10, Players: []string{"p9"}, Starters: []string{"p9"},
			PlayersPoints: map[string]float64{"p9": 10}},
		{RosterID: 2, MatchupID: 1, Points: 8},
	}

	matchups, err := normalizeMatchups(parsed, 1, testResolver(map[string]model.Player{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := matchups[0].HomePlayers[0]
	if p.Name != "Player p9" {
		t.Errorf("expected placeholder name, got: %s", p.Name)
	}
	if p.Position != model.POS_UNKNOWN {
		t.Errorf("expected unknown position, got: %s", p.Position)
	}
}

func TestNormalizeMatchups_failures(t *testing.T) {
	tests := map[string]struct {
		parsed   []sleeperMatchup
		resolve  NameResolver
		exErrMsg string
	}{
		"empty payload": {parsed: nil, exErrMsg: "no matchup data"},
		"all byes": {
			parsed:   []sleeperMatchup{{RosterID: 1, MatchupID: 0, Points: 50}},
			exErrMsg: "no matchup data",
		},
		"unresolvable pairing": {
			parsed: []sleeperMatchup{
				{RosterID: 1, MatchupID: 1, Points: 10},
				{RosterID: 2, MatchupID: 1, Points: 8},
				{RosterID: 3, MatchupID: 1, Points: 7},
			},
			exErrMsg: "has 3 rosters",
		},
		"negative team score": {
			parsed: []sleeperMatchup{
				{RosterID: 1, MatchupID: 1, Points: -2},
				{RosterID: 2, MatchupID: 1, Points: 8},
			},
			exErrMsg: "negative team score",
		},
		"resolver failure": {
			parsed: []sleeperMatchup{
				{RosterID: 1, MatchupID: 1, Points: 10, Players: []string{"p1"}},
				{RosterID: 2, MatchupID: 1, Points: 8},
			},
			resolve: func(ids []string) (map[string]model.Player, error) {
				return nil, errors.New("db is down")
			},
			exErrMsg: "error resolving player names",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			resolve := tc.resolve
			if resolve == nil {
				resolve = testResolver(testDirectory)
			}
			_, err := normalizeMatchups(tc.parsed, 1, resolve)
			if err == nil || !strings.Contains(err.Error(), tc.exErrMsg) {
				t.Errorf("expected error containing %q, got: %v", tc.exErrMsg, err)
			}
		})
	}
}
