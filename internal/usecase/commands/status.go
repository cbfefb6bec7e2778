package commands

import (
	"context"
	"log/slog"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/clock"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
)

type StatusChangeRequest struct {
	OrderID int64
	Target  string
	// Origin is the staff message the action came from, used when no
	// announcement reference was stored.
	Origin *shared.MessageRef
}

type StatusChangeResult struct {
	OrderID int64
	Status  order.Status
	Changed bool
}

type OrderStatusCommands interface {
	ChangeStatus(ctx context.Context, actor user.Principal, req StatusChangeRequest) (*StatusChangeResult, error)
}

type orderStatusUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier OrderNotifier
	clock    clock.Clock
}

func NewOrderStatusUseCase(uow shared.UnitOfWork, notifier OrderNotifier, clk clock.Clock) OrderStatusCommands {
	return &orderStatusUseCaseImpl{uow: uow, notifier: notifier, clock: clk}
}

func (uc *orderStatusUseCaseImpl) ChangeStatus(ctx context.Context, actor user.Principal, req StatusChangeRequest) (*StatusChangeResult, error) {
	if !actor.Can(user.RoleStaff) {
		return nil, errs.ErrForbidden
	}
	target, err := order.ParseTargetStatus(req.Target)
	if err != nil {
		return nil, mapDomainErr(err)
	}

	var (
		changed bool
		ownerID int64
	)
	now := uc.clock.Now()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindForUpdate(ctx, tx.DB(), req.OrderID)
		if derr != nil {
			return derr
		}
		ownerID = o.UserID()
		changed, derr = o.TransitionTo(target, now)
		if derr != nil || !changed {
			return derr
		}
		return tx.Orders().UpdateStatus(ctx, tx.DB(), o)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, mapDomainErr(err)
	}

	if changed {
		slog.Info("order status changed", "order_id", req.OrderID, "status", target, "actor_id", actor.ID)
		uc.notifier.AnnounceStatusChange(ctx, shared.StatusChange{
			OrderID: req.OrderID,
			UserID:  ownerID,
			Status:  target.String(),
			At:      now,
			Origin:  req.Origin,
		})
	}

	return &StatusChangeResult{OrderID: req.OrderID, Status: target, Changed: changed}, nil
}
