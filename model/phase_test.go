package model

import "testing"

func TestClassifyPhase(t *testing.T) {
	tests := map[string]struct {
		currentWeek      int
		playoffStartWeek int
		expected         SeasonPhase
	}{
		"first week":            {currentWeek: 1, playoffStartWeek: 15, expected: PhaseRegularSeason},
		"week before playoffs":  {currentWeek: 14, playoffStartWeek: 15, expected: PhaseRegularSeason},
		"playoff start week":    {currentWeek: 15, playoffStartWeek: 15, expected: PhasePlayoffs},
		"deep in playoffs":      {currentWeek: 17, playoffStartWeek: 15, expected: PhasePlayoffs},
		"playoffs start week 1": {currentWeek: 1, playoffStartWeek: 1, expected: PhasePlayoffs},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ClassifyPhase(tc.currentWeek, tc.playoffStartWeek); got != tc.expected {
				t.Errorf("ClassifyPhase(%d, %d) = %s, expected %s", tc.currentWeek, tc.playoffStartWeek, got, tc.expected)
			}
		})
	}
}

func TestClassifyPhaseExhaustive(t *testing.T) {
	// The rule is regular season iff currentWeek < playoffStartWeek.
	for current := 1; current <= 18; current++ {
		for start := 1; start <= 18; start++ {
			got := ClassifyPhase(current, start)
			expected := PhasePlayoffs
			if current < start {
				expected = PhaseRegularSeason
			}
			if got != expected {
				t.Fatalf("ClassifyPhase(%d, %d) = %s, expected %s", current, start, got, expected)
			}
		}
	}
}
