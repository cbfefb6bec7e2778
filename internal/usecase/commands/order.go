package commands

import (
	"context"
	"log/slog"

	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/clock"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type FinalizeResult struct {
	OrderID     int64
	Total       decimal.Decimal
	Fulfillment order.Fulfillment
	Branch      *shared.BranchSnapshot
}

// OrderFinalizer turns a confirmed checkout session into an order.
type OrderFinalizer interface {
	Finalize(ctx context.Context, userID int64) (*FinalizeResult, error)
}

type orderFinalizerImpl struct {
	uow      shared.UnitOfWork
	notifier OrderNotifier
	clock    clock.Clock
}

func NewOrderFinalizer(uow shared.UnitOfWork, notifier OrderNotifier, clk clock.Clock) OrderFinalizer {
	return &orderFinalizerImpl{uow: uow, notifier: notifier, clock: clk}
}

// Finalize commits order, items, basket clear and session delete in one
// transaction. On any failure nothing is written and the session stays in
// awaiting_confirmation.
func (uc *orderFinalizerImpl) Finalize(ctx context.Context, userID int64) (*FinalizeResult, error) {
	var (
		result     *FinalizeResult
		branchGone bool
	)

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, branchGone = nil, false
		now := uc.clock.Now()

		sess, derr := tx.Sessions().Load(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		intent, derr := sess.BeginFinalize(now)
		if derr != nil {
			return derr
		}

		b, derr := tx.Baskets().GetForUpdate(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if b.IsEmpty() {
			return errs.ErrEmptyBasket
		}

		var branch *shared.BranchSnapshot
		if !intent.IsDelivery() {
			branch, derr = tx.Reads().LockBranch(ctx, *intent.BranchID())
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					branchGone = true
					return errs.Mark(derr, errs.ErrBranchNotFound)
				}
				return derr
			}
		}

		o, derr := order.NewFromBasket(b, intent, now)
		if derr != nil {
			return derr
		}
		orderID, derr := tx.Orders().Create(ctx, tx.DB(), o)
		if derr != nil {
			return derr
		}
		// Lines inserted after the lock belong to the next order.
		if _, derr = tx.Baskets().RemoveLines(ctx, tx.DB(), userID, b.ProductIDs()); derr != nil {
			return derr
		}
		if derr = sess.CompleteFinalize(now); derr != nil {
			return derr
		}
		if _, derr = tx.Sessions().Delete(ctx, tx.DB(), userID); derr != nil {
			return derr
		}

		result = &FinalizeResult{
			OrderID:     orderID,
			Total:       o.Total(),
			Fulfillment: intent,
			Branch:      branch,
		}
		return nil
	})
	if err != nil {
		if branchGone {
			uc.sendBackToBranchSelection(ctx, userID)
		}
		return nil, mapDomainErr(err)
	}

	slog.Info("order finalized",
		"order_id", result.OrderID,
		"user_id", userID,
		"fulfillment", result.Fulfillment.Type(),
		"total", result.Total.StringFixed(2))

	uc.notifier.AnnounceNewOrder(ctx, result.OrderID)
	return result, nil
}

// sendBackToBranchSelection is best-effort; the caller already reports
// BranchNotFound.
func (uc *orderFinalizerImpl) sendBackToBranchSelection(ctx context.Context, userID int64) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sess, derr := tx.Sessions().Load(ctx, tx.DB(), userID)
		if derr != nil {
			return derr
		}
		if sess.State() != checkout.StateAwaitingConfirmation {
			return nil
		}
		if derr = sess.ReselectBranch(uc.clock.Now()); derr != nil {
			return derr
		}
		return tx.Sessions().Save(ctx, tx.DB(), sess)
	})
	if err != nil {
		slog.Warn("failed to reopen branch selection", "user_id", userID, "error", err.Error())
	}
}
