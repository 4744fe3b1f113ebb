package controller

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/nacallas/SkidmarkOS-sub001/db/mockdb"
	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/nacallas/SkidmarkOS-sub001/generator/mockgenerator"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/sleeper"
	"github.com/nacallas/SkidmarkOS-sub001/platforms/yahoo"
	"github.com/nacallas/SkidmarkOS-sub001/testutils"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
)

var (
	errLeagueLookup = errors.New("league lookup failed")
	errSave         = errors.New("save failed")
)

func newTestController(t *testing.T) (C, *mockdb.DB, *testutils.TestController) {
	t.Helper()

	tc := testutils.NewTestController()
	t.Cleanup(tc.Close)

	mockDB := &mockdb.DB{}
	c, err := New(
		tc.Clock,
		sleeper.NewForTest(tc.SleeperURL()),
		yahoo.NewForTest(tc.YahooURL()),
		tc.YahooConfig,
		generator.NewForTest(tc.RoastURL()),
		mockDB,
	)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c, mockDB, tc
}

func sleeperTestLeague() *model.League {
	return &model.League{
		ID:         1,
		Platform:   model.PlatformSleeper,
		ExternalID: testutils.SleeperLeagueID,
		Name:       "Trash Talk League",
		Year:       "2024",
		Context: &model.LeagueContext{
			SackoPunishment: "wear the dress at the draft",
			InsideJokes: []model.InsideJoke{
				{Term: "the blender", Explanation: "week 3 lineup disaster"},
			},
		},
	}
}

func yahooTestLeague() *model.League {
	return &model.League{
		ID:         2,
		Platform:   model.PlatformYahoo,
		ExternalID: testutils.YahooLeagueID,
		Name:       "Yahoo Trash League",
		Year:       "2024",
	}
}

func TestGenerateRoasts_sleeperRegularSeason(t *testing.T) {
	c, mockDB, tc := newTestController(t)
	ctx := context.Background()
	l := sleeperTestLeague()

	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("GetPlayers", ctx, mock.Anything).Return(testutils.PlayerDirectory(), nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	entry, err := c.GenerateRoasts(ctx, l.ID, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.LeagueID != l.ID || entry.Week != 5 {
		t.Errorf("wrong entry key: league %d week %d", entry.LeagueID, entry.Week)
	}
	if len(entry.Roasts) != 6 {
		t.Errorf("expected roasts for all 6 teams, got %d", len(entry.Roasts))
	}
	if entry.Roasts["1"] == "" {
		t.Error("expected a roast keyed by roster id")
	}
	if len(entry.Standings) != 6 || entry.Standings[0].Name != "Gary's Goons" {
		t.Errorf("expected the standings snapshot ordered by record, got: %v", entry.Standings)
	}
	if entry.Generated.IsZero() {
		t.Error("expected the generation timestamp to be set")
	}

	p := tc.RoastServer().LastPrompt()
	if !strings.Contains(p, "=== WEEK 5'S MATCHUPS ===") {
		t.Error("prompt missing the matchup section")
	}
	if !strings.Contains(p, "Jalen Hurts (QB): 34.7 pts") {
		t.Error("prompt missing a resolved player stat line")
	}
	if !strings.Contains(p, "Player 1005") {
		t.Error("unresolvable player ids should fall back to a placeholder name")
	}
	if strings.Contains(p, "PLAYOFF") {
		t.Error("week 5 is regular season, prompt must not mention the playoffs")
	}
	if !strings.Contains(p, "wear the dress at the draft") {
		t.Error("prompt missing the league context")
	}

	mockDB.AssertExpectations(t)
}

func TestGenerateRoasts_sleeperPlayoffs(t *testing.T) {
	c, mockDB, tc := newTestController(t)
	ctx := context.Background()
	l := sleeperTestLeague()

	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("GetPlayers", ctx, mock.Anything).Return(testutils.PlayerDirectory(), nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	entry, err := c.GenerateRoasts(ctx, l.ID, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.Roasts) != 6 {
		t.Errorf("expected roasts for all 6 teams, got %d", len(entry.Roasts))
	}

	p := tc.RoastServer().LastPrompt()
	wants := []string{
		"=== ROASTING APPROACH (PLAYOFF MODE) ===",
		"=== PLAYOFF BRACKET ===",
		"CHAMPIONSHIP MATCHUP",
		"#1 Gary's Goons vs Bob's Benchwarmers",
		"CONSOLATION BRACKET",
		"#6 Tina's Titans [ELIMINATED]",
	}
	for _, want := range wants {
		if !strings.Contains(p, want) {
			t.Errorf("playoff prompt missing %q", want)
		}
	}
}

func TestGenerateRoasts_settingsFailureFallsBackToRegularSeason(t *testing.T) {
	c, mockDB, tc := newTestController(t)
	ctx := context.Background()

	l := sleeperTestLeague()
	l.ExternalID = testutils.SleeperLeagueNoSettingsID

	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("GetPlayers", ctx, mock.Anything).Return(testutils.PlayerDirectory(), nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	// Week 15 would be the playoffs, but without settings the phase cannot
	// be classified and the run downgrades to regular season.
	entry, err := c.GenerateRoasts(ctx, l.ID, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.Roasts) != 6 {
		t.Errorf("expected roasts for all 6 teams, got %d", len(entry.Roasts))
	}

	p := tc.RoastServer().LastPrompt()
	if strings.Contains(p, "PLAYOFF") {
		t.Error("prompt must not mention the playoffs when settings are unavailable")
	}
	if !strings.Contains(p, "=== WEEK 15'S MATCHUPS ===") {
		t.Error("matchups should still be included")
	}
}

func TestGenerateRoasts_noMatchupDataUsesLegacyPrompt(t *testing.T) {
	c, mockDB, tc := newTestController(t)
	ctx := context.Background()
	l := sleeperTestLeague()

	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	// The fake has no matchup data for week 3.
	_, err := c.GenerateRoasts(ctx, l.ID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := tc.RoastServer().LastPrompt()
	if strings.Contains(p, "MATCHUPS ===") {
		t.Error("prompt must not have a matchup section when no matchup data exists")
	}
	if !strings.Contains(p, "=== LEAGUE DATA ===") {
		t.Error("prompt should still carry the league data section")
	}
}

func TestGenerateRoasts_yahooPlayoffs(t *testing.T) {
	c, mockDB, tc := newTestController(t)
	ctx := context.Background()
	l := yahooTestLeague()

	token := &oauth2.Token{
		AccessToken:  "access",
		RefreshToken: "refresh",
		Expiry:       time.Now().Add(time.Hour),
	}
	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("GetToken", ctx, l.ID).Return(token, nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	entry, err := c.GenerateRoasts(ctx, l.ID, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.Roasts) != 6 {
		t.Errorf("expected roasts for all 6 teams, got %d", len(entry.Roasts))
	}
	if entry.Roasts["449.l.431.t.1"] == "" {
		t.Error("expected roasts keyed by yahoo team key")
	}

	p := tc.RoastServer().LastPrompt()
	wants := []string{
		"=== PLAYOFF BRACKET ===",
		"CHAMPIONSHIP MATCHUP",
		"#1 Championship or Bust vs Third Seed Surging",
		"ELIMINATED (Fourth and Long, The Waiver Warriors)",
		"Lamar Jackson (QB)",
	}
	for _, want := range wants {
		if !strings.Contains(p, want) {
			t.Errorf("yahoo playoff prompt missing %q", want)
		}
	}
}

func TestGenerateRoasts_requestShape(t *testing.T) {
	tc := testutils.NewTestController()
	t.Cleanup(tc.Close)

	mockDB := &mockdb.DB{}
	mockGen := &mockgenerator.Client{}
	c, err := New(
		tc.Clock,
		sleeper.NewForTest(tc.SleeperURL()),
		yahoo.NewForTest(tc.YahooURL()),
		tc.YahooConfig,
		mockGen,
		mockDB,
	)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	ctx := context.Background()
	l := sleeperTestLeague()
	mockDB.On("GetLeague", ctx, l.ID).Return(l, nil)
	mockDB.On("GetPlayers", ctx, mock.Anything).Return(testutils.PlayerDirectory(), nil)
	mockDB.On("SaveRoast", ctx, mock.Anything).Return(nil)

	var req *generator.Request
	mockGen.On("Generate", ctx, mock.AnythingOfType("*generator.Request")).Run(func(args mock.Arguments) {
		req = args.Get(1).(*generator.Request)
	}).Return(map[string]string{"1": "ok"}, nil)

	if _, err := c.GenerateRoasts(ctx, l.ID, 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.WeekNumber != 15 || req.SeasonPhase != model.PhasePlayoffs {
		t.Errorf("unexpected request: week %d phase %s", req.WeekNumber, req.SeasonPhase)
	}
	if len(req.Teams) != 6 || len(req.PlayoffBracket) != 6 {
		t.Errorf("expected full standings and bracket, got %d teams and %d bracket entries", len(req.Teams), len(req.PlayoffBracket))
	}
	if req.Context == nil || req.Context.SackoPunishment == "" {
		t.Error("expected the league context to ride along")
	}
	if req.Prompt == "" {
		t.Error("expected the prompt to be assembled before the generation call")
	}
	mockGen.AssertExpectations(t)
}

func TestGenerateRoasts_failures(t *testing.T) {
	tests := map[string]struct {
		week        int
		setup       func(mockDB *mockdb.DB, tc *testutils.TestController)
		errContains string
	}{
		"invalid week": {
			week:        0,
			setup:       func(mockDB *mockdb.DB, tc *testutils.TestController) {},
			errContains: "week must be positive",
		},
		"league not found": {
			week: 5,
			setup: func(mockDB *mockdb.DB, tc *testutils.TestController) {
				mockDB.On("GetLeague", mock.Anything, int32(1)).Return(nil, errLeagueLookup)
			},
			errContains: "league lookup failed",
		},
		"generation service down": {
			week: 5,
			setup: func(mockDB *mockdb.DB, tc *testutils.TestController) {
				mockDB.On("GetLeague", mock.Anything, int32(1)).Return(sleeperTestLeague(), nil)
				mockDB.On("GetPlayers", mock.Anything, mock.Anything).Return(testutils.PlayerDirectory(), nil)
				tc.RoastServer().FailNext()
			},
			errContains: "error generating roasts",
		},
		"save failure": {
			week: 5,
			setup: func(mockDB *mockdb.DB, tc *testutils.TestController) {
				mockDB.On("GetLeague", mock.Anything, int32(1)).Return(sleeperTestLeague(), nil)
				mockDB.On("GetPlayers", mock.Anything, mock.Anything).Return(testutils.PlayerDirectory(), nil)
				mockDB.On("SaveRoast", mock.Anything, mock.Anything).Return(errSave)
			},
			errContains: "save failed",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, mockDB, fakes := newTestController(t)
			tc.setup(mockDB, fakes)

			_, err := c.GenerateRoasts(context.Background(), 1, tc.week)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.errContains) {
				t.Errorf("expected error containing %q, got: %v", tc.errContains, err)
			}
		})
	}
}
