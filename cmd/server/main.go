package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/CIA-PoPS/HACKATHON-24-25/conf"
	"github.com/CIA-PoPS/HACKATHON-24-25/http"
	"github.com/CIA-PoPS/HACKATHON-24-25/subm"
	submhttp "github.com/CIA-PoPS/HACKATHON-24-25/subm/http"
	"github.com/CIA-PoPS/HACKATHON-24-25/user"
	userhttp "github.com/CIA-PoPS/HACKATHON-24-25/user/http"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, relying on environment")
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))

	env := conf.ReadEnvConfig()
	if env.JwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	settings, err := conf.ReadSettings("settings.toml")
	if err != nil {
		slog.Error("failed to read settings", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pgPool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pgPool.Close()

	var mailer user.Mailer
	if env.SmtpHost != "" {
		mailer, err = user.NewSmtpMailer(env.SmtpHost, env.SmtpPort, env.SmtpUser, env.SmtpPass)
		if err != nil {
			slog.Error("failed to configure smtp mailer", "error", err)
			os.Exit(1)
		}
	}

	jwtKey := []byte(env.JwtKey)

	userSrvc := user.NewUserSrvc(pgPool, jwtKey, mailer, env.BackUrl)
	userFacade := subm.NewUserSrvcFacade(userSrvc)

	submSrvc := subm.NewSubmSrvc(ctx, subm.SubmSrvcParams{
		Repo:          subm.NewPgSubmRepo(pgPool),
		Users:         userFacade,
		Cooldown:      subm.NewCooldownTracker(settings.CooldownWindow()),
		Scorer:        subm.NewCmdScorer(settings.ScorerCmd),
		DataDir:       settings.DataDir,
		MaxConcurrent: settings.MaxConcurrentJobs,
		ScorerTimeout: settings.ScorerTimeout(),
	})

	userHandler := userhttp.NewUserHttpHandler(userSrvc, jwtKey)
	submHandler := submhttp.NewSubmHttpHandler(submSrvc, userFacade, settings.DataDir)

	httpServer := http.NewHttpServer(userHandler, submHandler, jwtKey)

	log.Printf("Starting server on %s", env.ListenAddr)
	err = httpServer.Start(env.ListenAddr)
	log.Printf("Server stopped with error: %v", err)
}
