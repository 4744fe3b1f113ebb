// Package prompt assembles the text prompt the roast generation service
// consumes. Build is pure: identical inputs always produce the identical
// string, so callers are free to rebuild instead of caching.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nacallas/SkidmarkOS-sub001/generator"
	"github.com/nacallas/SkidmarkOS-sub001/model"
)

// Build assembles the full prompt from a generation request. The team and
// context sections are always present. The matchup section appears only when
// matchup data exists, and when it is absent the output is structurally
// identical to the older season-aggregate prompt. Playoff tone replaces the
// regular season framing whenever the phase says playoffs, and the bracket
// section additionally needs bracket data - a missing bracket silently
// degrades to the bracket-less playoff format.
func Build(req *generator.Request) string {
	teams := req.Teams
	names := teamNames(teams)

	var matchupsSection string
	var matchupRequirements string
	if len(req.Matchups) > 0 {
		matchupsSection = formatMatchupsSection(req.Matchups, names, req.WeekNumber)
		matchupRequirements = strings.Join([]string{
			"- Reference specific player performances from this week's matchups. Call out breakout games and busts BY NAME.",
			"- Mention at least one specific player performance per roast -- use their actual point totals.",
			"- Mock teams that lost despite having a high-scoring player on their roster. Mock teams that won despite having a bust starter.",
		}, "\n")
	}

	var roastingApproach string
	var bracketSection string
	var playoffRequirements string
	if req.SeasonPhase == model.PhasePlayoffs {
		roastingApproach = buildPlayoffApproach(req.PlayoffBracket, names)
		if len(req.PlayoffBracket) > 0 {
			bracketSection = formatBracketSection(req.PlayoffBracket, names)
			playoffRequirements = strings.Join([]string{
				"- Reference each team's playoff seed and bracket position.",
				"- Emphasize elimination pressure -- every loss could be the last.",
				"- Mock eliminated teams mercilessly and reference their consolation bracket exile.",
				"- For head-to-head playoff matchups, reference what is at stake.",
				"- Give championship matchup teams an elevated, legacy-defining roast treatment.",
			}, "\n")
		}
	} else {
		roastingApproach = buildRegularSeasonApproach(teams, req.Context)
	}

	extraRequirements := ""
	for _, r := range []string{matchupRequirements, playoffRequirements} {
		if r != "" {
			extraRequirements += r + "\n"
		}
	}

	var b strings.Builder
	b.WriteString("You are Skidmark -- the most vulgar, brutally honest fantasy football roast bot ever created. ")
	b.WriteString("You call out poor performances with zero sugarcoating. You are roasting FRIENDS -- the goal is ")
	b.WriteString("laughs so hard they screenshot it for the group chat, not cruelty without comedic payoff.\n\n")

	b.WriteString(roastingApproach)
	b.WriteString("\n\n")
	b.WriteString(matchupsSection)
	b.WriteString(bracketSection)

	b.WriteString("=== REQUIREMENTS ===\n\n")
	b.WriteString("- Every stat, score, and record you reference MUST be exactly correct from the data provided. Use real numbers to twist the knife.\n")
	b.WriteString("- Weave inside jokes and personality descriptions naturally into roasts -- these are GOLD. Only include inside jokes if you are confident they will make sense to the recipient.\n")
	b.WriteString("- Write exactly 3-5 punchy sentences per team. No filler, no warm-up intros. Every sentence hits.\n")
	b.WriteString("- Reference at least one actual statistic per roast.\n")
	b.WriteString("- Use vivid metaphors, pop culture references, dark humor, and absurd comparisons.\n")
	b.WriteString(extraRequirements)
	b.WriteString("\n")

	b.WriteString("=== LEAGUE DATA ===\n\n")
	b.WriteString("TEAMS (ranked by standing):\n")
	b.WriteString(formatTeams(teams))
	b.WriteString("\n\n")
	b.WriteString(formatLeagueContext(req.Context))
	b.WriteString("\n")

	b.WriteString("=== OUTPUT FORMAT ===\n\n")
	b.WriteString("Return ONLY valid JSON (no markdown, no code fences). Each key is the team ID string, each value is the roast text (3-5 sentences).\n")
	b.WriteString(fmt.Sprintf("Keys: %s\n\n", formatTeamIDs(teams)))
	b.WriteString(`Example: {"1": "roast text here", "2": "roast text here"}`)
	b.WriteString("\n\nNow channel your inner Skidmark. Be brutal. Be statistically accurate. Be hilarious. Go.")

	return b.String()
}

func teamNames(teams []model.TeamStanding) map[string]string {
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.TeamID] = t.Name
	}
	return names
}

func teamName(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Team %s", id)
}

// formatMatchupsSection shows each head-to-head result with scores, every
// starter's stat line, and per team the single highest and lowest scoring
// starter. Ties go to the earlier player in the list so the output is
// deterministic.
func formatMatchupsSection(matchups []model.WeeklyMatchup, names map[string]string, week int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("=== WEEK %d'S MATCHUPS ===\n\n", week))

	for _, m := range matchups {
		homeName := teamName(names, m.HomeTeamID)
		awayName := teamName(names, m.AwayTeamID)

		resultHome, resultAway := "TIE", "TIE"
		if m.HomeScore > m.AwayScore {
			resultHome, resultAway = "WIN", "LOSS"
		} else if m.AwayScore > m.HomeScore {
			resultHome, resultAway = "LOSS", "WIN"
		}

		b.WriteString(fmt.Sprintf("%s (%.1f) vs %s (%.1f)\n\n", homeName, m.HomeScore, awayName, m.AwayScore))

		for _, side := range []struct {
			name    string
			score   float64
			result  string
			players []model.WeeklyPlayerStats
		}{
			{name: homeName, score: m.HomeScore, result: resultHome, players: m.HomePlayers},
			{name: awayName, score: m.AwayScore, result: resultAway, players: m.AwayPlayers},
		} {
			b.WriteString(fmt.Sprintf("  %s -- %.1f pts (%s)\n", side.name, side.score, side.result))

			starters := model.Starters(side.players)
			if len(starters) == 0 {
				b.WriteString("    No starter data available\n\n")
				continue
			}

			top, bust := 0, 0
			for i, p := range starters {
				if p.Points > starters[top].Points {
					top = i
				}
				if p.Points < starters[bust].Points {
					bust = i
				}
			}

			for i, p := range starters {
				marker := ""
				if i == top {
					marker = " <- TOP SCORER"
				} else if i == bust {
					marker = " <- BIGGEST BUST"
				}
				b.WriteString(fmt.Sprintf("    %s (%s): %.1f pts%s\n", p.Name, p.Position, p.Points, marker))
			}
			b.WriteString("\n")
		}

		b.WriteString("---\n")
	}
	b.WriteString("\n")

	return b.String()
}

// formatBracketSection enumerates seeds, pairings, and status, with the
// championship matchup called out separately from the rest of the field.
func formatBracketSection(bracket []model.PlayoffBracketEntry, names map[string]string) string {
	var championship, winners, consolation []model.PlayoffBracketEntry
	for _, e := range bracket {
		switch {
		case e.IsChampionship:
			championship = append(championship, e)
		case e.IsConsolation:
			consolation = append(consolation, e)
		default:
			winners = append(winners, e)
		}
	}

	var b strings.Builder
	b.WriteString("=== PLAYOFF BRACKET ===\n\n")

	if len(championship) > 0 {
		b.WriteString("CHAMPIONSHIP MATCHUP (for the title and the legacy):\n")
		for _, e := range championship {
			opponent := "TBD"
			if e.OpponentTeamID != "" {
				opponent = teamName(names, e.OpponentTeamID)
			}
			b.WriteString(fmt.Sprintf("  #%d %s vs %s\n", e.Seed, teamName(names, e.TeamID), opponent))
		}
		b.WriteString("\n")
	}

	if len(winners) > 0 {
		b.WriteString("WINNERS BRACKET:\n")
		for _, e := range winners {
			opponent := "TBD"
			if e.OpponentTeamID != "" {
				opponent = teamName(names, e.OpponentTeamID)
			}
			eliminated := ""
			if e.IsEliminated {
				eliminated = " [ELIMINATED]"
			}
			b.WriteString(fmt.Sprintf("  #%d %s (Round %d) vs %s%s\n", e.Seed, teamName(names, e.TeamID), e.CurrentRound, opponent, eliminated))
		}
		b.WriteString("\n")
	}

	if len(consolation) > 0 {
		b.WriteString("CONSOLATION BRACKET (the losers' lounge):\n")
		for _, e := range consolation {
			eliminated := ""
			if e.IsEliminated {
				eliminated = " [ELIMINATED]"
			}
			b.WriteString(fmt.Sprintf("  #%d %s%s\n", e.Seed, teamName(names, e.TeamID), eliminated))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// buildPlayoffApproach replaces the regular season tier structure with
// playoff tiers. Without bracket data the stakes framing still applies, just
// without per-team seed callouts.
func buildPlayoffApproach(bracket []model.PlayoffBracketEntry, names map[string]string) string {
	var b strings.Builder
	b.WriteString("=== ROASTING APPROACH (PLAYOFF MODE) ===\n\n")
	b.WriteString("This is the PLAYOFFS. Every game is win-or-go-home. The stakes are real, ")
	b.WriteString("the pressure is crushing, and the roasts should match the intensity.\n")

	if len(bracket) == 0 {
		b.WriteString("\nElimination is on the line every week now. Roast every team like its season could end on Sunday, because it can.")
		return b.String()
	}

	var champNames, eliminatedNames []string
	var hasActive, hasConsolation bool
	for _, e := range bracket {
		switch {
		case e.IsChampionship:
			champNames = append(champNames, teamName(names, e.TeamID))
		case e.IsEliminated:
			eliminatedNames = append(eliminatedNames, teamName(names, e.TeamID))
		case e.IsConsolation:
			hasConsolation = true
		default:
			hasActive = true
		}
	}

	if len(champNames) > 0 {
		b.WriteString(fmt.Sprintf("\nCHAMPIONSHIP CONTENDERS (%s): These teams are playing for the title and their legacy. ", strings.Join(champNames, ", ")))
		b.WriteString("Roast them like legends on trial -- acknowledge they made it this far, then question whether they deserve it. ")
		b.WriteString("Reference their seed, their bracket path, and why their opponent might end their dream.\n")
	}
	if hasActive {
		b.WriteString("\nACTIVE BRACKET: Still alive but one bad week from elimination. Mock their playoff seed, their matchup, ")
		b.WriteString("and the pressure of knowing it could all end. Reference their opponent and what a loss would mean.\n")
	}
	if hasConsolation {
		b.WriteString("\nCONSOLATION BRACKET: Already out of title contention but still playing meaningless games. ")
		b.WriteString("Mock the futility of consolation playoff wins. They are playing for pride that does not exist.\n")
	}
	if len(eliminatedNames) > 0 {
		b.WriteString(fmt.Sprintf("\nELIMINATED (%s): Absolute destruction. Their season is OVER. ", strings.Join(eliminatedNames, ", ")))
		b.WriteString("They are watching from the couch while others compete for glory. ")
		b.WriteString("Reference their seed, how far they fell, and the shame of early elimination.\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func buildRegularSeasonApproach(teams []model.TeamStanding, leagueContext *model.LeagueContext) string {
	topCutoff := 3
	midCutoff := min(7, len(teams)-1)

	sacko := "not specified"
	if leagueContext != nil && leagueContext.SackoPunishment != "" {
		sacko = leagueContext.SackoPunishment
	}

	bottomLine := "They are not tanking, they are just bad."
	if sacko != "not specified" {
		bottomLine = fmt.Sprintf("The sacko punishment (%s) is looming -- remind them VIVIDLY.", sacko)
	}

	return fmt.Sprintf(`=== ROASTING APPROACH ===

TOP TIER (ranks 1-%d): Celebrate success with backhanded compliments. Find the crack -- luck-carried records, boneheaded decisions, fraudulent point differentials -- and stick your finger in it.

MIDDLE TIER (ranks %d-%d): These are the frauds and pretenders. Mock their inconsistency and mediocrity ruthlessly. Not good enough to celebrate, not bad enough to pity.

BOTTOM TIER (ranks %d+): Absolute destruction. Reference their actual terrible stats. Mock delusional optimism. %s`,
		topCutoff, topCutoff+1, midCutoff, midCutoff+1, bottomLine)
}

func formatTeams(teams []model.TeamStanding) string {
	blocks := make([]string, 0, len(teams))
	for _, t := range teams {
		record := fmt.Sprintf("%d-%d", t.Wins, t.Losses)
		if t.Ties > 0 {
			record = fmt.Sprintf("%d-%d-%d", t.Wins, t.Losses, t.Ties)
		}
		streak := t.Streak
		if streak == "" {
			streak = "?"
		}
		owner := t.Owner
		if owner == "" {
			owner = "unknown"
		}
		blocks = append(blocks, fmt.Sprintf("- ID: %s | %q owned by %s\n  Record: %s | PF: %.1f | PA: %.1f | Streak: %s",
			t.TeamID, t.Name, owner, record, t.PointsFor, t.PointsAgainst, streak))
	}
	return strings.Join(blocks, "\n")
}

func formatLeagueContext(leagueContext *model.LeagueContext) string {
	jokes := "None provided."
	personalities := "None provided."
	sacko := "not specified"
	culture := "not specified"

	if leagueContext != nil {
		if len(leagueContext.InsideJokes) > 0 {
			lines := make([]string, 0, len(leagueContext.InsideJokes))
			for _, j := range leagueContext.InsideJokes {
				lines = append(lines, fmt.Sprintf("- %q: %s", j.Term, j.Explanation))
			}
			jokes = strings.Join(lines, "\n")
		}
		if len(leagueContext.Personalities) > 0 {
			lines := make([]string, 0, len(leagueContext.Personalities))
			for _, p := range leagueContext.Personalities {
				lines = append(lines, fmt.Sprintf("- %s: %s", p.PlayerName, p.Description))
			}
			personalities = strings.Join(lines, "\n")
		}
		if leagueContext.SackoPunishment != "" {
			sacko = leagueContext.SackoPunishment
		}
		if leagueContext.CultureNotes != "" {
			culture = leagueContext.CultureNotes
		}
	}

	return fmt.Sprintf("INSIDE JOKES:\n%s\n\nOWNER PERSONALITIES:\n%s\n\nSACKO PUNISHMENT: %s\nLEAGUE CULTURE: %s\n",
		jokes, personalities, sacko, culture)
}

func formatTeamIDs(teams []model.TeamStanding) string {
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, fmt.Sprintf("%q", t.TeamID))
	}
	return strings.Join(ids, ", ")
}
