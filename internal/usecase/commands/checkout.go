package commands

import (
	"context"

	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/clock"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
)

// CheckoutCommands drives the conversation up to confirmation. Confirmation
// itself belongs to OrderFinalizer.
type CheckoutCommands interface {
	Start(ctx context.Context, userID int64) (*checkout.Session, error)
	ChooseDelivery(ctx context.Context, userID int64) (*checkout.Session, error)
	ChoosePickup(ctx context.Context, userID int64) (*checkout.Session, error)
	ProvideLocation(ctx context.Context, userID int64, lat, lon float64) (*checkout.Session, error)
	SelectBranch(ctx context.Context, userID, branchID int64) (*checkout.Session, *shared.BranchSnapshot, error)
	Decline(ctx context.Context, userID int64) error
	// Cancel discards the caller's own session. It reports whether one existed.
	Cancel(ctx context.Context, userID int64) (bool, error)
	// ResetFor discards another user's session and needs the admin capability.
	ResetFor(ctx context.Context, actor user.Principal, targetUserID int64) (bool, error)
	Current(ctx context.Context, userID int64) (*checkout.Session, error)
}

type checkoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, clock: clk}
}

func (uc *checkoutUseCaseImpl) Start(ctx context.Context, userID int64) (*checkout.Session, error) {
	return uc.transition(ctx, userID, func(ctx context.Context, tx shared.Tx, s *checkout.Session) error {
		b, err := tx.Baskets().Get(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		if b.IsEmpty() {
			return errs.ErrEmptyBasket
		}
		return s.Start(uc.clock.Now())
	})
}

func (uc *checkoutUseCaseImpl) ChooseDelivery(ctx context.Context, userID int64) (*checkout.Session, error) {
	return uc.transition(ctx, userID, func(_ context.Context, _ shared.Tx, s *checkout.Session) error {
		return s.ChooseDelivery(uc.clock.Now())
	})
}

func (uc *checkoutUseCaseImpl) ChoosePickup(ctx context.Context, userID int64) (*checkout.Session, error) {
	return uc.transition(ctx, userID, func(_ context.Context, _ shared.Tx, s *checkout.Session) error {
		return s.ChoosePickup(uc.clock.Now())
	})
}

func (uc *checkoutUseCaseImpl) ProvideLocation(ctx context.Context, userID int64, lat, lon float64) (*checkout.Session, error) {
	loc, err := order.NewLocation(lat, lon)
	if err != nil {
		return nil, mapDomainErr(err)
	}
	return uc.transition(ctx, userID, func(_ context.Context, _ shared.Tx, s *checkout.Session) error {
		return s.ProvideLocation(loc, uc.clock.Now())
	})
}

func (uc *checkoutUseCaseImpl) SelectBranch(ctx context.Context, userID, branchID int64) (*checkout.Session, *shared.BranchSnapshot, error) {
	var branch *shared.BranchSnapshot
	s, err := uc.transition(ctx, userID, func(ctx context.Context, tx shared.Tx, s *checkout.Session) error {
		if s.State() != checkout.StateAwaitingBranchSelection {
			return checkout.ErrInvalidTransition
		}
		b, derr := tx.Reads().BranchByID(ctx, branchID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, errs.ErrBranchNotFound)
			}
			return derr
		}
		branch = b
		return s.SelectBranch(b.ID, uc.clock.Now())
	})
	if err != nil {
		return nil, nil, err
	}
	return s, branch, nil
}

func (uc *checkoutUseCaseImpl) Decline(ctx context.Context, userID int64) error {
	_, err := uc.transition(ctx, userID, func(_ context.Context, _ shared.Tx, s *checkout.Session) error {
		return s.Decline(uc.clock.Now())
	})
	return err
}

func (uc *checkoutUseCaseImpl) Cancel(ctx context.Context, userID int64) (bool, error) {
	var existed bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		existed, derr = tx.Sessions().Delete(ctx, tx.DB(), userID)
		return derr
	})
	if err != nil {
		return false, mapDomainErr(err)
	}
	return existed, nil
}

func (uc *checkoutUseCaseImpl) ResetFor(ctx context.Context, actor user.Principal, targetUserID int64) (bool, error) {
	if !actor.Can(user.RoleAdmin) {
		return false, errs.ErrForbidden
	}
	return uc.Cancel(ctx, targetUserID)
}

func (uc *checkoutUseCaseImpl) Current(ctx context.Context, userID int64) (*checkout.Session, error) {
	var s *checkout.Session
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		s, derr = tx.Sessions().Load(ctx, tx.DB(), userID)
		return derr
	})
	if err != nil {
		return nil, mapDomainErr(err)
	}
	return s, nil
}

// transition runs step against the row-locked session and persists the
// outcome. Terminal states delete the row instead of storing it.
func (uc *checkoutUseCaseImpl) transition(
	ctx context.Context,
	userID int64,
	step func(ctx context.Context, tx shared.Tx, s *checkout.Session) error,
) (*checkout.Session, error) {
	var out *checkout.Session
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, derr := tx.Sessions().Load(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if derr = step(ctx, tx, s); derr != nil {
			return derr
		}
		if s.State().IsTerminal() {
			_, derr = tx.Sessions().Delete(ctx, tx.DB(), userID)
		} else {
			derr = tx.Sessions().Save(ctx, tx.DB(), s)
		}
		if derr != nil {
			return derr
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, mapDomainErr(err)
	}
	return out, nil
}
