package web

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mww/teams_api/controller"
	"github.com/mww/teams_api/db"
	"github.com/mww/teams_api/schema"
	"github.com/unrolled/render"
)

// Request bodies larger than this are rejected as invalid input.
const maxBodyBytes = 1 << 20

func healthHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Ping(r.Context()); err != nil {
			log.Printf("health check failed: %v", err)
			render.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func listTeamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.ListTeams(r.Context())
		if err != nil {
			internalError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"teams": schema.SerializeMany(teams)})
	}
}

func getTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := teamID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		t, err := ctrl.GetTeam(r.Context(), id)
		if err != nil {
			teamError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"team": schema.Serialize(t)})
	}
}

func createTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := schema.ParseCreate(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			teamError(w, render, err)
			return
		}

		t, err := ctrl.CreateTeam(r.Context(), fields)
		if err != nil {
			internalError(w, render, err)
			return
		}

		// The create response uses "teams" for the single new record.
		render.JSON(w, http.StatusOK, map[string]any{"teams": schema.Serialize(t)})
	}
}

func updateTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := teamID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		update, err := schema.ParseUpdate(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			teamError(w, render, err)
			return
		}

		t, err := ctrl.UpdateTeam(r.Context(), id, update)
		if err != nil {
			teamError(w, render, err)
			return
		}

		render.JSON(w, http.StatusOK, map[string]any{"team": schema.Serialize(t)})
	}
}

func deleteTeamHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := teamID(r)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if err := ctrl.DeleteTeam(r.Context(), id); err != nil {
			teamError(w, render, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// teamID reads the id from the path. The route only matches digits, so the
// only failure is a number too large to be a team id, which can't exist.
func teamID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "teamID"), 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func teamError(w http.ResponseWriter, render *render.Render, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.Is(err, db.ErrTeamNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.As(err, &verr):
		render.JSON(w, http.StatusBadRequest, verr.Fields)
	default:
		internalError(w, render, err)
	}
}

func internalError(w http.ResponseWriter, render *render.Render, err error) {
	log.Printf("error handling request: %v", err)
	render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
