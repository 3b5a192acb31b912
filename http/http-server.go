package http

import (
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/auth"
	submhttp "github.com/CIA-PoPS/HACKATHON-24-25/subm/http"
	userhttp "github.com/CIA-PoPS/HACKATHON-24-25/user/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	userHandler *userhttp.UserHttpHandler,
	submHandler *submhttp.SubmHttpHandler,
	jwtKey []byte,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("hackathon", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware(jwtKey))

	userHandler.RegisterRoutes(router)
	submHandler.RegisterRoutes(router)

	return &HttpServer{router: router}
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

func (s *HttpServer) Router() http.Handler {
	return s.router
}
