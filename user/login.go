package user

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type LoginParams struct {
	Email    string
	Nickname string
	Password string
}

// Login accepts either the email or the nickname. Unverified accounts are
// rejected before the password is even checked, mirroring the registration
// flow's "verify first" rule.
func (s *UserSrvc) Login(ctx context.Context, p LoginParams) (res *User, err error) {
	all, err := selectAllUsers(ctx, s.postgres)
	if err != nil {
		return nil, newErrInternalSE().SetDebug(err)
	}

	for _, row := range all {
		if row.Email != p.Email && row.Nickname != p.Nickname {
			continue
		}
		if !row.IsVerified {
			return nil, newErrEmailNotVerified()
		}
		err = bcrypt.CompareHashAndPassword([]byte(row.BcryptPwd), []byte(p.Password))
		if err == nil {
			user := rowToUser(row)
			return &user, nil
		}
	}

	return nil, newErrInvalidCredentials()
}
