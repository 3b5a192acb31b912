package http

import (
	"github.com/CIA-PoPS/HACKATHON-24-25/user"
	"github.com/go-chi/chi/v5"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/register", h.Register)
	r.Get("/users/verify/{token}", h.Verify)
	r.Post("/users/login", h.Login)
	r.Get("/users/get", h.Whoami)
}
