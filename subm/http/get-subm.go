package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/subm"
	"github.com/google/uuid"
)

type Submission struct {
	TeamUUID     string    `json:"teamId"`
	Status       string    `json:"status"`
	SubmitTime   time.Time `json:"time"`
	Score        float64   `json:"score"`
	CanHaveError bool      `json:"canHaveError"`
}

func mapSubmission(s *subm.Submission) Submission {
	return Submission{
		TeamUUID:     s.TeamUUID.String(),
		Status:       string(s.Status),
		SubmitTime:   s.SubmitTime,
		Score:        s.Score,
		CanHaveError: s.CanHaveError,
	}
}

func (h *SubmHttpHandler) GetSubmit(w http.ResponseWriter, r *http.Request) {
	teamUuid := callerUuid(r)
	if teamUuid == uuid.Nil {
		httpjson.HandleError(slog.Default(), w, subm.ErrNotAuthenticated())
		return
	}

	found, err := h.submSrvc.GetSubm(r.Context(), teamUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmission(found))
}
