package commands

import (
	"context"

	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
)

// OrderNotifier fans order events out after commit. Implementations must not
// return errors for delivery failures; those are logged and dropped.
type OrderNotifier interface {
	AnnounceNewOrder(ctx context.Context, orderID int64)
	AnnounceStatusChange(ctx context.Context, change shared.StatusChange)
}

// mapDomainErr folds domain and repository failures into the sentinels the
// handlers switch on.
func mapDomainErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errs.Is(err, checkout.ErrInvalidTransition), errs.Is(err, checkout.ErrIncompleteIntent):
		return errs.Mark(err, errs.ErrInvalidCheckoutStep)
	case errs.Is(err, order.ErrEmptyBasket):
		return errs.Mark(err, errs.ErrEmptyBasket)
	case errs.Is(err, order.ErrInvalidLocation):
		return errs.Mark(err, errs.ErrInvalidLocation)
	case errs.Is(err, order.ErrInvalidStatus):
		return errs.Mark(err, errs.ErrInvalidStatus)
	case errs.Is(err, order.ErrStatusTransition):
		return errs.Mark(err, errs.ErrInvalidStatusTransition)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	default:
		return err
	}
}
