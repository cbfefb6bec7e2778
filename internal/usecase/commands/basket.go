package commands

import (
	"context"

	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
)

type BasketCommands interface {
	// Increment returns the new stored quantity.
	Increment(ctx context.Context, userID, productID int64) (int, error)
	// Decrement returns the remaining quantity; zero means the entry is gone.
	Decrement(ctx context.Context, userID, productID int64) (int, error)
	Clear(ctx context.Context, userID int64) error
}

type basketUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBasketUseCase(uow shared.UnitOfWork) BasketCommands {
	return &basketUseCaseImpl{uow: uow}
}

func (uc *basketUseCaseImpl) Increment(ctx context.Context, userID, productID int64) (int, error) {
	var qty int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, productID); derr != nil {
			return derr
		}
		var derr error
		qty, derr = tx.Baskets().Increment(ctx, tx.DB(), userID, productID)
		return derr
	})
	if err != nil {
		// A concurrent catalog delete surfaces as a foreign key violation.
		if infra.IsKind(err, infra.KindNotFound) || infra.IsKind(err, infra.KindForeignKeyViolated) {
			return 0, errs.Mark(err, errs.ErrProductNotFound)
		}
		return 0, mapDomainErr(err)
	}
	return qty, nil
}

func (uc *basketUseCaseImpl) Decrement(ctx context.Context, userID, productID int64) (int, error) {
	var qty int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		qty, derr = tx.Baskets().Decrement(ctx, tx.DB(), userID, productID)
		return derr
	})
	if err != nil {
		return 0, mapDomainErr(err)
	}
	return qty, nil
}

func (uc *basketUseCaseImpl) Clear(ctx context.Context, userID int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Baskets().Clear(ctx, tx.DB(), userID)
		return derr
	})
	return mapDomainErr(err)
}
