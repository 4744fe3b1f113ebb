package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/nacallas/SkidmarkOS-sub001/model"
)

var playoffTerms = []string{"PLAYOFF", "elimination", "CHAMPIONSHIP", "bracket", "seed"}

func testStandings(n int) []model.TeamStanding {
	teams := make([]model.TeamStanding, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, model.TeamStanding{
			TeamID:        fmt.Sprintf("%d", i),
			Name:          fmt.Sprintf("Team %d", i),
			Owner:         fmt.Sprintf("owner%d", i),
			Rank:          i,
			Wins:          n - i,
			Losses:        i - 1,
			PointsFor:     float64(1000 - i*10),
			PointsAgainst: float64(900 + i*10),
			Streak:        "W1",
		})
	}
	return teams
}

func testMatchup() model.WeeklyMatchup {
	return model.WeeklyMatchup{
		Week:       8,
		HomeTeamID: "1",
		AwayTeamID: "2",
		HomeScore:  131.5,
		AwayScore:  98.2,
		HomePlayers: []model.WeeklyPlayerStats{
			{PlayerID: "p1", Name: "Josh Allen", Position: model.POS_QB, Points: 34.7, IsStarter: true},
			{PlayerID: "p2", Name: "Bijan Robinson", Position: model.POS_RB, Points: 22.1, IsStarter: true},
			{PlayerID: "p3", Name: "Diontae Johnson", Position: model.POS_WR, Points: 1.2, IsStarter: true},
			{PlayerID: "p4", Name: "Bench Guy", Position: model.POS_TE, Points: 40.0, IsStarter: false},
		},
		AwayPlayers: []model.WeeklyPlayerStats{
			{PlayerID: "p5", Name: "Lamar Jackson", Position: model.POS_QB, Points: 28.3, IsStarter: true},
			{PlayerID: "p6", Name: "Zach Ertz", Position: model.POS_TE, Points: 3.4, IsStarter: true},
		},
	}
}

func TestBuild_regularSeason(t *testing.T) {
	teams := testStandings(10)
	p := Build(&generator.Request{Teams: teams, WeekNumber: 8, SeasonPhase: model.PhaseRegularSeason, Matchups: []model.WeeklyMatchup{testMatchup()}})

	for _, term := range playoffTerms {
		if strings.Contains(p, term) {
			t.Errorf("regular season prompt should not contain %q", term)
		}
	}

	wants := []string{
		"=== ROASTING APPROACH ===",
		"=== WEEK 8'S MATCHUPS ===",
		"Team 1 (131.5) vs Team 2 (98.2)",
		"Team 1 -- 131.5 pts (WIN)",
		"Team 2 -- 98.2 pts (LOSS)",
		"Josh Allen (QB): 34.7 pts <- TOP SCORER",
		"Diontae Johnson (WR): 1.2 pts <- BIGGEST BUST",
		"Lamar Jackson (QB): 28.3 pts <- TOP SCORER",
		"Zach Ertz (TE): 3.4 pts <- BIGGEST BUST",
		"=== REQUIREMENTS ===",
		"=== LEAGUE DATA ===",
		"=== OUTPUT FORMAT ===",
		`Keys: "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"`,
	}
	for _, want := range wants {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(p, "Bench Guy") {
		t.Error("bench players should not appear in the matchup section")
	}
}

func TestBuild_regularSeasonTiers(t *testing.T) {
	tests := map[string]struct {
		teamCount int
		wants     []string
	}{
		"ten teams": {
			teamCount: 10,
			wants:     []string{"ranks 1-3", "ranks 4-7", "ranks 8+"},
		},
		"six teams": {
			teamCount: 6,
			wants:     []string{"ranks 1-3", "ranks 4-5", "ranks 6+"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := Build(&generator.Request{Teams: testStandings(tc.teamCount), WeekNumber: 4, SeasonPhase: model.PhaseRegularSeason})
			for _, want := range tc.wants {
				if !strings.Contains(p, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
		})
	}
}

func TestBuild_noMatchupsMatchesLegacyFormat(t *testing.T) {
	teams := testStandings(8)
	lc := &model.LeagueContext{SackoPunishment: "wear the dress"}

	p := Build(&generator.Request{Teams: teams, Context: lc, WeekNumber: 5, SeasonPhase: model.PhaseRegularSeason})
	empty := Build(&generator.Request{Teams: teams, Context: lc, WeekNumber: 5, SeasonPhase: model.PhaseRegularSeason, Matchups: []model.WeeklyMatchup{}})

	if p != empty {
		t.Error("nil and empty matchup slices should produce identical prompts")
	}
	if strings.Contains(p, "MATCHUPS ===") {
		t.Error("prompt without matchup data should not have a matchups section")
	}
	if strings.Contains(p, "Reference specific player performances") {
		t.Error("prompt without matchup data should not carry matchup requirements")
	}
	if !strings.Contains(p, "wear the dress") {
		t.Error("sacko punishment should still appear in the legacy format")
	}
}

func TestBuild_playoffsWithoutBracket(t *testing.T) {
	p := Build(&generator.Request{Teams: testStandings(10), WeekNumber: 15, SeasonPhase: model.PhasePlayoffs, Matchups: []model.WeeklyMatchup{testMatchup()}})

	if !strings.Contains(p, "=== ROASTING APPROACH (PLAYOFF MODE) ===") {
		t.Error("playoff phase should use the playoff roasting approach")
	}
	if strings.Contains(p, "=== PLAYOFF BRACKET ===") {
		t.Error("bracket section should be omitted when no bracket data exists")
	}
	if strings.Contains(p, "Reference each team's playoff seed") {
		t.Error("bracket-specific requirements should be omitted when no bracket data exists")
	}
	if !strings.Contains(p, "win-or-go-home") {
		t.Error("playoff stakes framing should survive a missing bracket")
	}
}

func TestBuild_playoffsWithBracket(t *testing.T) {
	bracket := []model.PlayoffBracketEntry{
		{TeamID: "1", Seed: 1, CurrentRound: 2, OpponentTeamID: "3", IsChampionship: true},
		{TeamID: "3", Seed: 3, CurrentRound: 2, OpponentTeamID: "1", IsChampionship: true},
		{TeamID: "2", Seed: 2, CurrentRound: 2, IsEliminated: true},
		{TeamID: "4", Seed: 4, CurrentRound: 1, IsEliminated: true},
		{TeamID: "5", Seed: 5, CurrentRound: 2, IsConsolation: true},
		{TeamID: "6", Seed: 6, CurrentRound: 2, IsConsolation: true, IsEliminated: true},
	}

	p := Build(&generator.Request{Teams: testStandings(6), WeekNumber: 16, SeasonPhase: model.PhasePlayoffs, Matchups: []model.WeeklyMatchup{testMatchup()}, PlayoffBracket: bracket})

	wants := []string{
		"=== ROASTING APPROACH (PLAYOFF MODE) ===",
		"=== PLAYOFF BRACKET ===",
		"CHAMPIONSHIP MATCHUP",
		"#1 Team 1 vs Team 3",
		"#3 Team 3 vs Team 1",
		"WINNERS BRACKET:",
		"#2 Team 2 (Round 2) vs TBD [ELIMINATED]",
		"CONSOLATION BRACKET",
		"#5 Team 5",
		"#6 Team 6 [ELIMINATED]",
		"CHAMPIONSHIP CONTENDERS (Team 1, Team 3)",
		"ELIMINATED (Team 2, Team 4)",
		"Reference each team's playoff seed",
	}
	for _, want := range wants {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuild_deterministic(t *testing.T) {
	teams := testStandings(10)
	lc := &model.LeagueContext{
		InsideJokes:   []model.InsideJoke{{Term: "the blender", Explanation: "week 3 lineup disaster"}},
		Personalities: []model.Personality{{PlayerName: "owner1", Description: "never reads the waiver wire"}},
	}
	matchups := []model.WeeklyMatchup{testMatchup()}

	req := &generator.Request{Teams: teams, Context: lc, WeekNumber: 8, SeasonPhase: model.PhaseRegularSeason, Matchups: matchups}
	a := Build(req)
	b := Build(req)
	if a != b {
		t.Error("identical inputs should produce identical prompts")
	}
}

func TestBuild_topScorerTieGoesToFirstStarter(t *testing.T) {
	m := model.WeeklyMatchup{
		Week: 3, HomeTeamID: "1", AwayTeamID: "2", HomeScore: 40, AwayScore: 20,
		HomePlayers: []model.WeeklyPlayerStats{
			{PlayerID: "a", Name: "First Twin", Position: model.POS_RB, Points: 20.0, IsStarter: true},
			{PlayerID: "b", Name: "Second Twin", Position: model.POS_RB, Points: 20.0, IsStarter: true},
		},
		AwayPlayers: []model.WeeklyPlayerStats{
			{PlayerID: "c", Name: "Solo Act", Position: model.POS_WR, Points: 20.0, IsStarter: true},
		},
	}

	p := Build(&generator.Request{Teams: testStandings(2), WeekNumber: 3, SeasonPhase: model.PhaseRegularSeason, Matchups: []model.WeeklyMatchup{m}})

	if !strings.Contains(p, "First Twin (RB): 20.0 pts <- TOP SCORER") {
		t.Error("tied top scorer should go to the first starter listed")
	}
	if strings.Contains(p, "Second Twin (RB): 20.0 pts <-") {
		t.Error("the second tied starter should carry no marker")
	}
	if !strings.Contains(p, "Solo Act (WR): 20.0 pts <- TOP SCORER") {
		t.Error("a lone starter is its team's top scorer")
	}
}
