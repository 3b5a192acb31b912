package subm

import (
	"context"

	"github.com/CIA-PoPS/HACKATHON-24-25/user"
	"github.com/google/uuid"
)

type userSrvcAdapter struct {
	srvc *user.UserSrvc
}

// NewUserSrvcFacade narrows the full user service down to what the
// submission pipeline needs.
func NewUserSrvcFacade(srvc *user.UserSrvc) UserSrvcFacade {
	return &userSrvcAdapter{srvc: srvc}
}

func (a *userSrvcAdapter) GetAccount(ctx context.Context, userUuid uuid.UUID) (Account, error) {
	found, err := a.srvc.GetUserByUUID(ctx, userUuid)
	if err != nil {
		return Account{}, err
	}
	return Account{
		UUID:       found.UUID,
		Nickname:   found.Nickname,
		IsAdmin:    found.IsAdmin,
		IsVerified: found.IsVerified,
		IsTeam:     found.IsTeam,
	}, nil
}

func (a *userSrvcAdapter) GetNicknames(ctx context.Context, uuids []uuid.UUID) ([]string, error) {
	return a.srvc.GetNicknames(ctx, uuids)
}
