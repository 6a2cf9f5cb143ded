package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brian91-1031/Kendo-Play-Recorder/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) SubmitScoreHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := getMatchID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		RedScore   uint   `json:"red_score"`
		WhiteScore uint   `json:"white_score"`
		Details    string `json:"details"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.matchService.SubmitScore(r.Context(), tournamentID, matchID, input.RedScore, input.WhiteScore, input.Details)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) WalkoverHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := getMatchID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.matchService.Walkover(r.Context(), tournamentID, matchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) RankingsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			badRequestResponse(w, r, errors.New("limit must be a positive integer"))
			return
		}
	}

	rankings, err := h.matchService.Rankings(r.Context(), tournamentID, limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"rankings": rankings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) RoundsHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	rootMatchID := 0
	if raw := r.URL.Query().Get("root"); raw != "" {
		rootMatchID, err = strconv.Atoi(raw)
		if err != nil || rootMatchID < 1 {
			badRequestResponse(w, r, errors.New("root must be a positive match id"))
			return
		}
	}

	rounds, err := h.matchService.Rounds(r.Context(), tournamentID, rootMatchID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) MatchStatesHandler(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getTournamentID(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	states, err := h.matchService.MatchStates(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"states": states}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
