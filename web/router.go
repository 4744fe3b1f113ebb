package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nacallas/SkidmarkOS-sub001/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The generation pipeline calls the roast service, which can take
	// minutes. It gets its own timeout group so the default request timeout
	// below never caps its context deadline.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(3 * time.Minute))

		r.Post("/leagues/{leagueID:\\d+}/roasts/{week:\\d+}", generateRoastsHandler(ctrl, render))
	})

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(10 * time.Second))

		r.Get("/", rootHandler(ctrl, render))

		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", listLeaguesHandler(ctrl, render))
			r.Post("/", addLeagueHandler(ctrl, render))
			// League discovery on the platform, e.g. /leagues/platform?platform=sleeper&username=...
			r.Get("/platform", platformLeaguesHandler(ctrl, render))

			r.Route("/{leagueID:\\d+}", func(r chi.Router) {
				r.Get("/", getLeagueHandler(ctrl, render))
				r.Delete("/", deleteLeagueHandler(ctrl, render))
				r.Put("/context", updateLeagueContextHandler(ctrl, render))

				r.Get("/roasts/{week:\\d+}", getRoastHandler(ctrl, render))
				r.Delete("/roasts", deleteRoastsHandler(ctrl, render))

				r.Get("/weeks", listWeeksHandler(ctrl, render))
				r.Get("/weeks/{week:\\d+}", weekViewHandler(ctrl, render))
				r.Get("/weeks/current", currentWeekViewHandler(ctrl, render))
			})
		})

		r.Route("/oauth", func(r chi.Router) {
			r.Get("/yahoo", oauthLinkHandler(ctrl, render))
			r.Get("/redirect", oauthRedirectHandler(ctrl, render))
			r.Post("/save", oauthSaveHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("skidmark", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                                     // Set a longer timeout for /admin actions

		r.Post("/players", forceUpdatePlayers(ctrl, render))
	})

	return r
}
