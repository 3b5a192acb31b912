package conf

import (
	"fmt"
	"os"
)

type EnvConfig struct {
	ListenAddr string
	JwtKey     string
	BackUrl    string // base url embedded in verification links

	SmtpHost string
	SmtpPort string
	SmtpUser string
	SmtpPass string
}

func ReadEnvConfig() *EnvConfig {
	result := &EnvConfig{}

	result.ListenAddr = os.Getenv("LISTEN_ADDR")
	if result.ListenAddr == "" {
		result.ListenAddr = ":8080"
	}

	result.JwtKey = os.Getenv("JWT_KEY")
	result.BackUrl = os.Getenv("BACK_URL")

	result.SmtpHost = os.Getenv("MAIL_HOST")
	result.SmtpPort = os.Getenv("MAIL_PORT")
	result.SmtpUser = os.Getenv("MAIL_USER")
	result.SmtpPass = os.Getenv("MAIL_PASSWORD")

	return result
}

func GetPgConnStrFromEnv() string {
	host := os.Getenv("POSTGRES_HOST")
	user := os.Getenv("POSTGRES_USER")
	pw := os.Getenv("POSTGRES_PW")
	port := os.Getenv("POSTGRES_PORT")
	db := os.Getenv("POSTGRES_DB")
	ssl := os.Getenv("POSTGRES_SSLMODE")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pw, db, ssl,
	)
}
