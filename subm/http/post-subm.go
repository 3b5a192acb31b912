package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/subm"
	"github.com/google/uuid"
)

func (h *SubmHttpHandler) PostSubmit(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		Stages []int  `json:"stages"`
		Code   string `json:"code"`
	}

	teamUuid := callerUuid(r)
	if teamUuid == uuid.Nil {
		httpjson.HandleError(slog.Default(), w, subm.ErrNotAuthenticated())
		return
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	// the caller polls GET /code/submits for the outcome; the completion
	// handle only matters to tests and the queue itself
	_, err := h.submSrvc.Submit(r.Context(), teamUuid, request.Stages, request.Code)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, nil)
}
