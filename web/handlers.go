package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nacallas/SkidmarkOS-sub001/controller"
	"github.com/nacallas/SkidmarkOS-sub001/db"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func renderError(render *render.Render, w http.ResponseWriter, status int, err error) {
	render.JSON(w, status, errorResponse{Error: err.Error()})
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "skidmark roast service")
	}
}

func listLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagues, err := ctrl.ListLeagues(r.Context())
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func addLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Platform   string `json:"platform"`
			ExternalID string `json:"external_id"`
			Name       string `json:"name"`
			Year       string `json:"year"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing league data: %w", err))
			return
		}

		l, err := ctrl.AddLeague(r.Context(), body.Platform, body.ExternalID, body.Name, body.Year)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, http.StatusCreated, l)
	}
}

func platformLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		platform := r.URL.Query().Get("platform")
		username := r.URL.Query().Get("username")
		year := r.URL.Query().Get("year")

		leagues, err := ctrl.GetLeaguesFromPlatform(r.Context(), username, platform, year)
		if err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}
		render.JSON(w, http.StatusOK, leagues)
	}
}

func getLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		l, err := ctrl.GetLeague(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}
		render.JSON(w, http.StatusOK, l)
	}
}

func deleteLeagueHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		if err := ctrl.DeleteLeague(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func updateLeagueContextHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		var lc model.LeagueContext
		if err := json.NewDecoder(r.Body).Decode(&lc); err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing league context: %w", err))
			return
		}

		if err := ctrl.UpdateLeagueContext(r.Context(), id, &lc); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getRoastHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}
		week, ok := weekParam(render, w, r)
		if !ok {
			return
		}

		entry, err := ctrl.GetRoast(r.Context(), id, week)
		if err != nil {
			if errors.Is(err, db.ErrRoastNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}
		render.JSON(w, http.StatusOK, entry)
	}
}

func generateRoastsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}
		week, ok := weekParam(render, w, r)
		if !ok {
			return
		}

		entry, err := ctrl.GenerateRoasts(r.Context(), id, week)
		if err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusBadGateway, err)
			}
			return
		}
		render.JSON(w, http.StatusCreated, entry)
	}
}

func deleteRoastsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		if err := ctrl.DeleteLeagueRoasts(r.Context(), id); err != nil {
			if errors.Is(err, db.ErrLeagueNotFound) {
				renderError(render, w, http.StatusNotFound, err)
			} else {
				renderError(render, w, http.StatusInternalServerError, err)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listWeeksHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		weeks, err := ctrl.ListRoastWeeks(r.Context(), id)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}
		if weeks == nil {
			weeks = []int{}
		}
		render.JSON(w, http.StatusOK, weeks)
	}
}

func weekViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}
		week, ok := weekParam(render, w, r)
		if !ok {
			return
		}

		renderWeekView(ctrl, render, w, r, id, week)
	}
}

func currentWeekViewHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := leagueID(render, w, r)
		if !ok {
			return
		}

		renderWeekView(ctrl, render, w, r, id, 0)
	}
}

func renderWeekView(ctrl controller.C, render *render.Render, w http.ResponseWriter, r *http.Request, id int32, week int) {
	view, err := ctrl.GetWeekView(r.Context(), id, week)
	if err != nil {
		if errors.Is(err, db.ErrLeagueNotFound) {
			renderError(render, w, http.StatusNotFound, err)
		} else {
			renderError(render, w, http.StatusInternalServerError, err)
		}
		return
	}
	render.JSON(w, http.StatusOK, view)
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error updating players: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "update players completed successfully")
	}
}

func leagueID(render *render.Render, w http.ResponseWriter, r *http.Request) (int32, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "leagueID"))
	if err != nil {
		renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing league id: %w", err))
		return 0, false
	}
	return int32(id), true
}

func weekParam(render *render.Render, w http.ResponseWriter, r *http.Request) (int, bool) {
	week, err := strconv.Atoi(chi.URLParam(r, "week"))
	if err != nil {
		renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing week: %w", err))
		return 0, false
	}
	return week, true
}
