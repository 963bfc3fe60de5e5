package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/teams_api/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", healthHandler(ctrl, render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Post("/", createTeamHandler(ctrl, render))
		r.Get("/{teamID:\\d+}", getTeamHandler(ctrl, render))
		r.Put("/{teamID:\\d+}", updateTeamHandler(ctrl, render))
		r.Delete("/{teamID:\\d+}", deleteTeamHandler(ctrl, render))
	})

	return r
}
