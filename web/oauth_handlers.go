package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/nacallas/SkidmarkOS-sub001/controller"
	"github.com/nacallas/SkidmarkOS-sub001/model"
	"github.com/unrolled/render"
)

func oauthLinkHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := ctrl.OAuthStart(model.PlatformYahoo)
		if err != nil {
			renderError(render, w, http.StatusInternalServerError, err)
			return
		}

		http.Redirect(w, r, url, http.StatusSeeOther)
	}
}

func oauthRedirectHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		code := params.Get("code")
		state := params.Get("state")

		if err := ctrl.OAuthExchange(r.Context(), state, code); err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		// The caller holds on to the state and posts it back to /oauth/save
		// once the league exists.
		render.JSON(w, http.StatusOK, map[string]string{"state": state})
	}
}

func oauthSaveHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}

		state := r.FormValue("state")
		leagueID, err := strconv.Atoi(r.FormValue("league_id"))
		if err != nil {
			renderError(render, w, http.StatusBadRequest, fmt.Errorf("error parsing league id: %w", err))
			return
		}

		if err := ctrl.OAuthSave(r.Context(), state, int32(leagueID)); err != nil {
			renderError(render, w, http.StatusBadRequest, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
