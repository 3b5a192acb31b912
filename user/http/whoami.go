package http

import (
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/auth"
	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/srvcerror"
	"github.com/google/uuid"
)

type User struct {
	UUID       string `json:"uuid"`
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	IsAdmin    bool   `json:"isAdmin"`
	IsVerified bool   `json:"isVerified"`
	IsTeam     bool   `json:"isATeam"`
}

func (h *UserHttpHandler) Whoami(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w, "not authenticated",
			http.StatusUnauthorized, "not_authenticated")
		return
	}

	userUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.HandleError(slog.Default(), w,
			srvcerror.ErrInternalSE().SetDebug(err))
		return
	}

	found, err := h.userSrvc.GetUserByUUID(r.Context(), userUuid)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, User{
		UUID:       found.UUID.String(),
		Email:      found.Email,
		Nickname:   found.Nickname,
		IsAdmin:    found.IsAdmin,
		IsVerified: found.IsVerified,
		IsTeam:     found.IsTeam,
	})
}
