package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
	"github.com/CIA-PoPS/HACKATHON-24-25/user"
	"github.com/go-chi/chi/v5"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Password string `json:"password"`
	}

	type registerResponse struct {
		Message string `json:"message"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	_, err := h.userSrvc.Register(r.Context(), user.RegisterParams{
		Email:    request.Email,
		Nickname: request.Nickname,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, registerResponse{
		Message: "user registered, please verify your email",
	})
}

func (h *UserHttpHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	err := h.userSrvc.VerifyEmail(r.Context(), token)
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{
		"message": "email verified successfully",
	})
}
