package user

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/CIA-PoPS/HACKATHON-24-25/auth"
	"github.com/CIA-PoPS/HACKATHON-24-25/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterParams struct {
	Email    string
	Nickname string
	Password string
}

// Register creates an unverified account and sends out the verification
// link. The account cannot log in or submit until the link is followed.
func (s *UserSrvc) Register(ctx context.Context, p RegisterParams) (res *User, err error) {
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validateNickname(p.Nickname); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}

	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, user := range all {
		// nickname must be unique
		if user.Nickname == p.Nickname {
			return nil, newErrNicknameExists()
		}
		// email must be unique
		if user.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	row := &dbUser{
		UUID:       uuid.New(),
		Email:      p.Email,
		Nickname:   p.Nickname,
		BcryptPwd:  string(bcryptPwd),
		CreatedAt:  time.Now(),
		IsAdmin:    false,
		IsVerified: false,
		IsTeam:     true,
	}

	err = insertUser(ctx, s.postgres, row)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	token, err := auth.GenerateEmailToken(row.Email, s.jwtKey)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	link := fmt.Sprintf("%s/users/verify/%s", s.backUrl, token)
	if err := s.mailer.SendVerification(ctx, row.Email, link); err != nil {
		// the account exists either way; an operator can re-verify by hand
		logger.FromContext(ctx).Error("failed to send verification mail",
			"email", row.Email, "error", err)
	}

	user := rowToUser(*row)
	return &user, nil
}

// VerifyEmail marks the account behind a verification token as verified.
func (s *UserSrvc) VerifyEmail(ctx context.Context, token string) error {
	email, err := auth.ValidateEmailToken(token, s.jwtKey)
	if err != nil {
		return newErrInvalidVerificationToken().SetDebug(err)
	}

	updated, err := markUserVerified(ctx, s.postgres, email)
	if err != nil {
		return newErrInternalSE().SetDebug(err)
	}
	if !updated {
		return newErrUserNotFound()
	}

	return nil
}

// Validation functions
func validateNickname(nickname string) error {
	const minNicknameLength = 2
	const maxNicknameLength = 32
	if len(nickname) < minNicknameLength {
		return newErrNicknameTooShort(minNicknameLength)
	}
	if len(nickname) > maxNicknameLength {
		return newErrNicknameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}

	if len(email) == 0 {
		return newErrEmailEmpty()
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return newErrEmailInvalid()
	}

	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > 1024 {
		return newErrPasswordTooLong()
	}
	return nil
}
