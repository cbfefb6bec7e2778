package commands

import (
	"context"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
)

type RegisterUserRequest struct {
	ID        int64
	FirstName string
	LastName  string
	Username  *string
}

type UserCommands interface {
	// Register upserts the profile on every contact so display names stay current.
	Register(ctx context.Context, req RegisterUserRequest) (*user.User, error)
	CapturePhone(ctx context.Context, userID int64, raw string) (bool, error)
}

type userUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewUserUseCase(uow shared.UnitOfWork) UserCommands {
	return &userUseCaseImpl{uow: uow}
}

func (uc *userUseCaseImpl) Register(ctx context.Context, req RegisterUserRequest) (*user.User, error) {
	u, err := user.NewUser(req.ID, user.NewDisplayName(req.FirstName, req.LastName), req.Username)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stored *user.User
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		stored, derr = tx.Users().Upsert(ctx, tx.DB(), u)
		return derr
	})
	if err != nil {
		return nil, mapDomainErr(err)
	}
	return stored, nil
}

func (uc *userUseCaseImpl) CapturePhone(ctx context.Context, userID int64, raw string) (bool, error) {
	phone, err := user.NewPhone(raw)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDomainValidation)
	}

	var captured bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		captured, derr = tx.Users().CapturePhone(ctx, tx.DB(), userID, phone)
		return derr
	})
	if err != nil {
		return false, mapDomainErr(err)
	}
	return captured, nil
}
