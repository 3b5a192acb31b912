package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserSrvc struct {
	postgres *pgxpool.Pool
	jwtKey   []byte
	mailer   Mailer
	backUrl  string
}

func NewUserSrvc(pg *pgxpool.Pool, jwtKey []byte, mailer Mailer, backUrl string) *UserSrvc {
	if mailer == nil {
		mailer = &LogMailer{}
	}
	return &UserSrvc{
		postgres: pg,
		jwtKey:   jwtKey,
		mailer:   mailer,
		backUrl:  backUrl,
	}
}

type User struct {
	UUID       uuid.UUID
	Email      string
	Nickname   string
	IsAdmin    bool
	IsVerified bool
	IsTeam     bool
}

func (s *UserSrvc) GetUserByUUID(ctx context.Context, userUuid uuid.UUID) (*User, error) {
	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, row := range all {
		if row.UUID == userUuid {
			user := rowToUser(row)
			return &user, nil
		}
	}

	return nil, newErrUserNotFound()
}

func (s *UserSrvc) GetNicknames(ctx context.Context, uuids []uuid.UUID) ([]string, error) {
	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	nicknames := make([]string, 0, len(uuids))
	for _, id := range uuids {
		found := false
		for _, row := range all {
			if row.UUID == id {
				nicknames = append(nicknames, row.Nickname)
				found = true
				break
			}
		}
		if !found {
			return nil, newErrUserNotFound()
		}
	}

	return nicknames, nil
}

func rowToUser(row dbUser) User {
	return User{
		UUID:       row.UUID,
		Email:      row.Email,
		Nickname:   row.Nickname,
		IsAdmin:    row.IsAdmin,
		IsVerified: row.IsVerified,
		IsTeam:     row.IsTeam,
	}
}

type dbUser struct {
	UUID       uuid.UUID
	Email      string
	Nickname   string
	BcryptPwd  string
	CreatedAt  time.Time
	IsAdmin    bool
	IsVerified bool
	IsTeam     bool
}

func selectAllUsers(ctx context.Context, pg *pgxpool.Pool) ([]dbUser, error) {
	rows, err := pg.Query(ctx, `
		SELECT uuid, email, nickname, bcrypt_pwd, created_at, is_admin, is_verified, is_team
		FROM users
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []dbUser
	for rows.Next() {
		var user dbUser
		err := rows.Scan(
			&user.UUID,
			&user.Email,
			&user.Nickname,
			&user.BcryptPwd,
			&user.CreatedAt,
			&user.IsAdmin,
			&user.IsVerified,
			&user.IsTeam,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func insertUser(ctx context.Context, pg *pgxpool.Pool, user *dbUser) error {
	_, err := pg.Exec(ctx, `
		INSERT INTO users (uuid, email, nickname, bcrypt_pwd, created_at, is_admin, is_verified, is_team)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		user.UUID,
		user.Email,
		user.Nickname,
		user.BcryptPwd,
		user.CreatedAt,
		user.IsAdmin,
		user.IsVerified,
		user.IsTeam,
	)
	return err
}

func markUserVerified(ctx context.Context, pg *pgxpool.Pool, email string) (bool, error) {
	tag, err := pg.Exec(ctx, `
		UPDATE users SET is_verified = true WHERE email = $1
	`, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
