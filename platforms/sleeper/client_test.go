package sleeper

import (
	"reflect"
	"testing"

	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/testutils"
)

func newFakeClient(t *testing.T) Client {
	t.Helper()
	fake := testutils.NewFakeSleeperServer()
	t.Cleanup(fake.Close)
	return NewForTest(fake.URL())
}

func TestGetUserID(t *testing.T) {
	c := newFakeClient(t)

	id, err := c.GetUserID(testutils.SleeperUsername)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != testutils.SleeperUserID {
		t.Errorf("expected %s, got %s", testutils.SleeperUserID, id)
	}

	// Sleeper 200s with a "null" body for unknown usernames.
	if _, err := c.GetUserID("nobody"); err == nil {
		t.Error("expected an error for an unknown username")
	}
}

func TestGetLeaguesForUser(t *testing.T) {
	c := newFakeClient(t)

	leagues, err := c.GetLeaguesForUser(testutils.SleeperUserID, "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.League{{
		Platform:   model.PlatformSleeper,
		ExternalID: testutils.SleeperLeagueID,
		Name:       "Trash Talk League",
		Year:       "2024",
	}}
	if !reflect.DeepEqual(leagues, want) {
		t.Errorf("expected %+v, got %+v", want, leagues)
	}

	leagues, err = c.GetLeaguesForUser(testutils.SleeperUserID, "2019")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leagues) != 0 {
		t.Errorf("expected no leagues for a year with none, got %d", len(leagues))
	}
}

func TestGetLeagueSettings(t *testing.T) {
	c := newFakeClient(t)

	settings, err := c.GetLeagueSettings(testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &model.LeagueSettings{
		CurrentWeek:        15,
		PlayoffStartWeek:   15,
		PlayoffTeamCount:   4,
		RegularSeasonWeeks: 14,
	}
	if !reflect.DeepEqual(settings, want) {
		t.Errorf("expected %+v, got %+v", want, settings)
	}
}

func TestGetLeagueSettings_failures(t *testing.T) {
	tests := map[string]string{
		"missing playoff settings": testutils.SleeperLeagueNoSettingsID,
		"unknown league":           "00000000000000000",
	}

	for name, leagueID := range tests {
		t.Run(name, func(t *testing.T) {
			c := newFakeClient(t)
			if _, err := c.GetLeagueSettings(leagueID); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadPlayers(t *testing.T) {
	c := newFakeClient(t)

	players, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The fixture carries an invalid placeholder record and one with no
	// position, both get filtered.
	want := testutils.PlayerDirectory()
	if len(players) != len(want) {
		t.Fatalf("expected %d players, got %d", len(want), len(players))
	}
	for _, p := range players {
		w, ok := want[p.ID]
		if !ok {
			t.Errorf("unexpected player: %+v", p)
			continue
		}
		if p != w {
			t.Errorf("expected %+v, got %+v", w, p)
		}
	}
}

func TestGetStandings(t *testing.T) {
	c := newFakeClient(t)

	standings, err := c.GetStandings(testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(standings) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(standings))
	}

	first := standings[0]
	if first.TeamID != "1" || first.Name != "Gary's Goons" || first.Owner != "gridironGary" {
		t.Errorf("unexpected leader: %+v", first)
	}
	if first.Rank != 1 || first.Wins != 11 || first.Losses != 3 || first.PointsFor != 1650.5 {
		t.Errorf("unexpected leader record: %+v", first)
	}

	last := standings[5]
	if last.TeamID != "6" || last.Rank != 6 || last.Wins != 2 {
		t.Errorf("unexpected last place: %+v", last)
	}
}

func TestGetMatchups(t *testing.T) {
	c := newFakeClient(t)

	resolve := func(ids []string) (map[string]model.Player, error) {
		return testutils.PlayerDirectory(), nil
	}

	matchups, err := c.GetMatchups(testutils.SleeperLeagueID, 5, resolve)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchups) != 3 {
		t.Fatalf("expected 3 matchups, got %d", len(matchups))
	}

	m := matchups[0]
	if m.Week != 5 || m.HomeTeamID != "1" || m.AwayTeamID != "4" {
		t.Errorf("unexpected pairing: %+v", m)
	}
	if m.HomeScore != 131.5 || m.AwayScore != 95.2 {
		t.Errorf("unexpected scores: %+v", m)
	}

	if len(m.HomePlayers) != 3 {
		t.Fatalf("expected 3 home players, got %d", len(m.HomePlayers))
	}
	hurts := m.HomePlayers[0]
	if hurts.Name != "Jalen Hurts" || hurts.Position != model.POS_QB || hurts.Points != 34.7 || !hurts.IsStarter {
		t.Errorf("unexpected starter: %+v", hurts)
	}
	bench := m.HomePlayers[2]
	if bench.Name != "Player 1001" || bench.IsStarter {
		t.Errorf("expected an unresolved bench player, got: %+v", bench)
	}
}

func TestGetMatchups_emptyWeek(t *testing.T) {
	c := newFakeClient(t)

	resolve := func(ids []string) (map[string]model.Player, error) {
		return testutils.PlayerDirectory(), nil
	}

	if _, err := c.GetMatchups(testutils.SleeperLeagueID, 3, resolve); err == nil {
		t.Error("expected an error for a week with no matchup data")
	}
}

func TestGetBracket(t *testing.T) {
	c := newFakeClient(t)

	bracket, err := c.GetBracket(testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bracket) != 6 {
		t.Fatalf("expected 6 bracket entries, got %d", len(bracket))
	}

	bySeed := make(map[int]model.PlayoffBracketEntry, len(bracket))
	for _, e := range bracket {
		bySeed[e.Seed] = e
	}

	one := bySeed[1]
	if one.TeamID != "1" || one.IsEliminated || !one.IsChampionship || one.OpponentTeamID != "3" {
		t.Errorf("unexpected top seed entry: %+v", one)
	}
	four := bySeed[4]
	if four.TeamID != "4" || !four.IsEliminated {
		t.Errorf("expected the four seed to be eliminated: %+v", four)
	}
	six := bySeed[6]
	if six.TeamID != "6" || !six.IsEliminated || !six.IsConsolation {
		t.Errorf("unexpected consolation entry: %+v", six)
	}
}
