package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/dominoes-tournament/models"
	"github.com/Dosada05/dominoes-tournament/services"
)

const (
	ActionReset   = "reset"
	ActionAdvance = "advance"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// TournamentActionInput is the body of POST /api/tournament.
type TournamentActionInput struct {
	Action string `json:"action"`
	Rounds *int   `json:"rounds,omitempty"`
}

// GetTournament godoc
// @Summary Current tournament
// @Description Returns the stored tournament, creating it from the league roster on first use.
// @Tags tournament
// @Produce json
// @Success 200 {object} models.Tournament
// @Failure 500 {object} map[string]string
// @Router /api/tournament [get]
func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.Get(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// PostTournament godoc
// @Summary Reset or auto-advance the tournament
// @Description action "reset" starts over from the roster. action "advance" plays the pending
// @Description matches of the current round with random scores and advances, "rounds" times (1..64, default 1).
// @Tags tournament
// @Accept json
// @Produce json
// @Param input body TournamentActionInput true "Action"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tournament [post]
func (h *TournamentHandler) PostTournament(w http.ResponseWriter, r *http.Request) {
	var input TournamentActionInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var (
		tournament *models.Tournament
		err        error
	)
	switch input.Action {
	case ActionReset:
		tournament, err = h.tournamentService.Reset(r.Context())
	case ActionAdvance:
		rounds := 1
		if input.Rounds != nil {
			rounds = *input.Rounds
		}
		tournament, err = h.tournamentService.Advance(r.Context(), rounds)
	default:
		err = fmt.Errorf("%w: %q", services.ErrUnknownAction, input.Action)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SubmitScore godoc
// @Summary Enter a match result
// @Description Scores a match of the current round. A tied score is accepted and leaves the match open.
// @Tags tournament
// @Accept json
// @Produce json
// @Param matchID path string true "Match ID, e.g. R2-L3"
// @Param input body models.Score true "Score"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/tournament/matches/{matchID}/score [post]
func (h *TournamentHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	var score models.Score
	if err := readJSON(w, r, &score); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.SubmitScore(r.Context(), matchID, score)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AdvanceRound godoc
// @Summary Advance one round
// @Description Generates the next round once every match of the current round is completed.
// @Tags tournament
// @Produce json
// @Success 200 {object} models.Tournament
// @Failure 409 {object} map[string]string "Current round still has open matches"
// @Router /api/tournament/advance [post]
func (h *TournamentHandler) AdvanceRound(w http.ResponseWriter, r *http.Request) {
	tournament, err := h.tournamentService.AdvanceRound(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, tournament, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetStandings godoc
// @Summary Team records
// @Description Wins, losses and bracket of every team, recomputed from match history.
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/tournament/standings [get]
func (h *TournamentHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.tournamentService.Standings(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
