package http

import (
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/auth"
	"github.com/CIA-PoPS/HACKATHON-24-25/subm"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SubmHttpHandler struct {
	submSrvc *subm.SubmSrvc
	users    subm.UserSrvcFacade
	dataDir  string
}

func NewSubmHttpHandler(submSrvc *subm.SubmSrvc, users subm.UserSrvcFacade, dataDir string) *SubmHttpHandler {
	return &SubmHttpHandler{
		submSrvc: submSrvc,
		users:    users,
		dataDir:  dataDir,
	}
}

func (h *SubmHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/code/submits", h.PostSubmit)
	r.Get("/code/submits", h.GetSubmit)
	r.Get("/code/scoreboard", h.Scoreboard)
	r.Get("/code/dl/{extension}", h.Download)
}

// callerUuid resolves the authenticated team, or returns uuid.Nil when the
// request carries no (valid) token.
func callerUuid(r *http.Request) uuid.UUID {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return uuid.Nil
	}
	teamUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		return uuid.Nil
	}
	return teamUuid
}
