package handlers

import (
	"net/http"

	"github.com/Dosada05/dominoes-tournament/brackets"
	"github.com/Dosada05/dominoes-tournament/services"
)

type ModelHandler struct {
	tournamentService services.TournamentService
}

func NewModelHandler(ts services.TournamentService) *ModelHandler {
	return &ModelHandler{tournamentService: ts}
}

type SetModelInput struct {
	Model string `json:"model"`
}

// GetModel godoc
// @Summary Active bracket model
// @Tags model
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/model [get]
func (h *ModelHandler) GetModel(w http.ResponseWriter, r *http.Request) {
	model, err := h.tournamentService.Model(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	resp := jsonResponse{"model": model, "available": brackets.EngineNames()}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetModel godoc
// @Summary Switch bracket model
// @Description Stores the model and restarts the tournament under it.
// @Tags model
// @Accept json
// @Produce json
// @Param input body SetModelInput true "Model name"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/model [put]
func (h *ModelHandler) SetModel(w http.ResponseWriter, r *http.Request) {
	var input SetModelInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.SetModel(r.Context(), input.Model)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	resp := jsonResponse{"model": tournament.Model, "tournament": tournament}
	if err := writeJSON(w, http.StatusOK, resp, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
