package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/CIA-PoPS/HACKATHON-24-25/conf"
	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

// Maintenance commands for operators: verify an account by hand when the
// mail never arrived, grant flags, peek at the scoreboard.
func main() {
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "admin",
		Usage: "hackathon backend maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "verify",
				Usage: "mark a user's email as verified",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nickname", Required: true},
				},
				Action: verifyAction,
			},
			{
				Name:  "grant",
				Usage: "grant admin and/or team flags to a user",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "nickname", Required: true},
					&cli.BoolFlag{Name: "admin"},
					&cli.BoolFlag{Name: "team"},
				},
				Action: grantAction,
			},
			{
				Name:   "scoreboard",
				Usage:  "print the current scoreboard",
				Action: scoreboardAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	return pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
}

func verifyAction(ctx context.Context, cmd *cli.Command) error {
	pg, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pg.Close()

	nickname := cmd.String("nickname")
	tag, err := pg.Exec(ctx, `
		UPDATE users SET is_verified = true WHERE nickname = $1
	`, nickname)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user with nickname %q", nickname)
	}

	color.Green("verified %s", nickname)
	return nil
}

func grantAction(ctx context.Context, cmd *cli.Command) error {
	pg, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pg.Close()

	nickname := cmd.String("nickname")
	tag, err := pg.Exec(ctx, `
		UPDATE users
		SET is_admin = is_admin OR $2, is_team = is_team OR $3
		WHERE nickname = $1
	`, nickname, cmd.Bool("admin"), cmd.Bool("team"))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user with nickname %q", nickname)
	}

	color.Green("updated flags for %s (admin=%v team=%v)",
		nickname, cmd.Bool("admin"), cmd.Bool("team"))
	return nil
}

func scoreboardAction(ctx context.Context, cmd *cli.Command) error {
	pg, err := connect(ctx)
	if err != nil {
		return err
	}
	defer pg.Close()

	rows, err := pg.Query(ctx, `
		SELECT u.nickname, s.score, s.status
		FROM submits s JOIN users u ON s.team_uuid = u.uuid
		ORDER BY s.score DESC
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	bold := color.New(color.Bold)
	for rows.Next() {
		var nickname, status string
		var score float64
		if err := rows.Scan(&nickname, &score, &status); err != nil {
			return err
		}
		bold.Printf("%-32s", nickname)
		fmt.Printf(" %10.2f  %s\n", score, status)
	}
	return rows.Err()
}
