package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/dominoes-tournament/models"
)

// LeagueSource is the read side of the team registry.
type LeagueSource interface {
	Leagues() []string
	Teams(league string) ([]models.Team, error)
}

type LeagueHandler struct {
	leagues LeagueSource
}

func NewLeagueHandler(leagues LeagueSource) *LeagueHandler {
	return &LeagueHandler{leagues: leagues}
}

// ListLeagues godoc
// @Summary Known leagues
// @Tags leagues
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/leagues [get]
func (h *LeagueHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"leagues": h.leagues.Leagues()}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListTeams godoc
// @Summary League roster
// @Tags leagues
// @Produce json
// @Param league path string true "League"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/leagues/{league}/teams [get]
func (h *LeagueHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.leagues.Teams(chi.URLParam(r, "league"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
