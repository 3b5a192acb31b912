package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/auth"
	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/user"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	loggedIn, err := h.userSrvc.Login(r.Context(), user.LoginParams{
		Email:    request.Email,
		Nickname: request.Nickname,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	token, err := auth.GenerateJWT(
		loggedIn.UUID,
		loggedIn.Nickname,
		loggedIn.IsAdmin,
		h.JwtKey)
	if err != nil {
		err = fmt.Errorf("failed to generate JWT: %w", err)
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{"token": token})
}
