package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

const (
	SleeperUsername = "sleeperuser"
	SleeperUserID   = "12345678"
	SleeperLeagueID = "98765432100000000"
	// SleeperLeagueNoSettingsID serves the same data as SleeperLeagueID but
	// its league metadata has no playoff settings.
	SleeperLeagueNoSettingsID = "98765432100000001"
)

//go:embed sleeperdata
var sleeperdata embed.FS

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/state/nfl", nflStateHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/matchups/{week}", matchupsHandler)
			r.Get("/rosters", rostersHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/winners_bracket", winnersBracketHandler)
			r.Get("/losers_bracket", losersBracketHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	if userID == SleeperUserID && year == "2024" {
		serveFile(w, "user_leagues.json")
	} else {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
	}
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == SleeperUsername {
		serveFile(w, "sleeperuser.json")
	} else {
		// requesting a user that doesn't exist seems to return a 200 with "null" as the response body as of 2024-08-12
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") == SleeperLeagueNoSettingsID {
		serveFile(w, "league_nosettings.json")
		return
	}
	serveLeagueFile(w, r, "league.json")
}

func matchupsHandler(w http.ResponseWriter, r *http.Request) {
	// Sleeper answers out-of-range weeks with an empty list.
	week := chi.URLParam(r, "week")
	if week != "5" && week != "15" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveLeagueFile(w, r, "matchups.json")
}

func rostersHandler(w http.ResponseWriter, r *http.Request) {
	serveLeagueFile(w, r, "rosters.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	serveLeagueFile(w, r, "users.json")
}

func winnersBracketHandler(w http.ResponseWriter, r *http.Request) {
	serveLeagueFile(w, r, "winners_bracket.json")
}

func losersBracketHandler(w http.ResponseWriter, r *http.Request) {
	serveLeagueFile(w, r, "losers_bracket.json")
}

func serveLeagueFile(w http.ResponseWriter, r *http.Request, name string) {
	leagueID := chi.URLParam(r, "leagueID")
	if leagueID != SleeperLeagueID && leagueID != SleeperLeagueNoSettingsID {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveFile(w, name)
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
