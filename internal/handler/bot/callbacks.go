package bot

import (
	"context"
	"fmt"
	"log/slog"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/callback"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/shared"
)

func (r *UpdateRouter) handleCallback(ctx context.Context, cq *telegram.CallbackQuery) error {
	act, err := callback.Parse(cq.Data)
	if err != nil {
		slog.Warn("malformed callback data", "data", cq.Data, "user_id", cq.From.ID)
		return r.messenger.AnswerCallback(ctx, cq.ID, "", false)
	}

	userID := cq.From.ID
	chatID := userID
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
	}

	var answer string
	switch act.Kind {
	case callback.KindBasketInc:
		err = r.onBasketChange(ctx, cq, userID, chatID, true, act.ID)
	case callback.KindBasketDec:
		err = r.onBasketChange(ctx, cq, userID, chatID, false, act.ID)
	case callback.KindBasketAdd:
		var qty int
		qty, err = r.baskets.Increment(ctx, userID, act.ID)
		answer = fmt.Sprintf("✅ Added to basket (%d)", qty)
	case callback.KindBasketShow:
		err = r.showBasket(ctx, userID, chatID)
	case callback.KindBasketNoop:
	case callback.KindCheckoutStart:
		err = r.onCheckoutStart(ctx, cq, userID, chatID)
	case callback.KindCheckoutDeliv:
		if _, err = r.checkout.ChooseDelivery(ctx, userID); err == nil {
			err = r.replace(ctx, cq, chatID, textDelivery, nil)
		}
	case callback.KindCheckoutPickup:
		if _, err = r.checkout.ChoosePickup(ctx, userID); err == nil {
			err = r.showBranches(ctx, cq, chatID)
		}
	case callback.KindCheckoutBranch:
		if _, _, err = r.checkout.SelectBranch(ctx, userID, act.ID); err == nil {
			err = r.send(ctx, chatID, textPickupConfirm, confirmKeyboard())
		}
	case callback.KindCheckoutYes:
		return r.onConfirm(ctx, cq, userID, chatID)
	case callback.KindCheckoutNo:
		if err = r.checkout.Decline(ctx, userID); err == nil {
			err = r.replaceWithBasket(ctx, cq, userID, chatID)
		}
	case callback.KindOrderStatus:
		answer, err = r.onStatusChange(ctx, cq, act)
	case callback.KindProduct:
		err = r.showProduct(ctx, chatID, act.ID)
	case callback.KindCategory:
		err = r.showCategory(ctx, chatID, catalog.Category(act.Arg))
	}

	if err != nil {
		return r.fail(ctx, cq, userID, chatID, err)
	}
	return r.messenger.AnswerCallback(ctx, cq.ID, answer, false)
}

// fail answers the callback with an alert for expected outcomes and a
// generic reply otherwise. The originating message is left untouched.
func (r *UpdateRouter) fail(ctx context.Context, cq *telegram.CallbackQuery, userID, chatID int64, cause error) error {
	alert, ok := failureAlert(cause)
	if !ok {
		if aerr := r.messenger.AnswerCallback(ctx, cq.ID, "", false); aerr != nil {
			slog.Warn("failed to answer callback", "callback_id", cq.ID, "error", aerr.Error())
		}
		if sendErr := r.send(ctx, chatID, textGenericError, nil); sendErr != nil {
			slog.Warn("failed to send error reply", "chat_id", chatID, "error", sendErr.Error())
		}
		return cause
	}

	if err := r.messenger.AnswerCallback(ctx, cq.ID, alert, true); err != nil {
		return err
	}
	if errs.Is(cause, errs.ErrEmptyBasket) {
		return r.showBasket(ctx, userID, chatID)
	}
	return nil
}

func (r *UpdateRouter) replace(ctx context.Context, cq *telegram.CallbackQuery, chatID int64, text string, kb shared.Keyboard) error {
	if cq == nil || cq.Message == nil || len(cq.Message.Photo) > 0 {
		return r.send(ctx, chatID, text, kb)
	}
	return r.messenger.Edit(ctx, shared.MessageRef{ChatID: chatID, MessageID: cq.Message.MessageID}, text, kb)
}

func (r *UpdateRouter) replaceWithBasket(ctx context.Context, cq *telegram.CallbackQuery, userID, chatID int64) error {
	b, err := r.basketQ.GetBasket(ctx, userID)
	if err != nil {
		return err
	}
	text, kb := renderBasket(b)
	return r.replace(ctx, cq, chatID, text, kb)
}

func (r *UpdateRouter) onBasketChange(ctx context.Context, cq *telegram.CallbackQuery, userID, chatID int64, inc bool, productID int64) error {
	var err error
	if inc {
		_, err = r.baskets.Increment(ctx, userID, productID)
	} else {
		_, err = r.baskets.Decrement(ctx, userID, productID)
	}
	if err != nil {
		return err
	}
	return r.replaceWithBasket(ctx, cq, userID, chatID)
}

func (r *UpdateRouter) onCheckoutStart(ctx context.Context, cq *telegram.CallbackQuery, userID, chatID int64) error {
	if _, err := r.checkout.Start(ctx, userID); err != nil {
		return err
	}
	return r.replace(ctx, cq, chatID, textFulfillment, fulfillmentKeyboard())
}

func (r *UpdateRouter) showBranches(ctx context.Context, cq *telegram.CallbackQuery, chatID int64) error {
	branches, err := r.catalog.ListBranches(ctx)
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return r.replace(ctx, cq, chatID, textNoBranches, nil)
	}
	if err := r.replace(ctx, cq, chatID, textBranchHeader, nil); err != nil {
		return err
	}
	for _, b := range branches {
		text, kb := renderBranchCard(b)
		if b.ImageRef != nil && *b.ImageRef != "" {
			if _, err := r.messenger.SendPhoto(ctx, chatID, *b.ImageRef, text, kb); err == nil {
				continue
			}
			slog.Warn("branch photo failed, sending text", "branch_id", b.ID)
		}
		if err := r.send(ctx, chatID, text, kb); err != nil {
			return err
		}
	}
	return nil
}

// onConfirm answers the callback itself since a failed finalize has
// outcomes beyond a single alert.
func (r *UpdateRouter) onConfirm(ctx context.Context, cq *telegram.CallbackQuery, userID, chatID int64) error {
	res, err := r.finalizer.Finalize(ctx, userID)
	switch {
	case err == nil:
		if err := r.replace(ctx, cq, chatID, renderConfirmation(res), nil); err != nil {
			return err
		}
		return r.messenger.AnswerCallback(ctx, cq.ID, "", false)
	case errs.Is(err, errs.ErrBranchNotFound):
		// The session is back in branch selection.
		if err := r.messenger.AnswerCallback(ctx, cq.ID, alertBranchGone, true); err != nil {
			return err
		}
		return r.showBranches(ctx, nil, chatID)
	case errs.Is(err, errs.ErrDatabaseOperationFailed):
		slog.Error("order finalize failed", "user_id", userID, "error", err.Error())
		if aerr := r.messenger.AnswerCallback(ctx, cq.ID, "", false); aerr != nil {
			slog.Warn("failed to answer callback", "error", aerr.Error())
		}
		return r.send(ctx, chatID, textOrderFailed, nil)
	}
	return r.fail(ctx, cq, userID, chatID, err)
}

func (r *UpdateRouter) onStatusChange(ctx context.Context, cq *telegram.CallbackQuery, act callback.Action) (string, error) {
	chatID := cq.From.ID
	var origin *shared.MessageRef
	if cq.Message != nil {
		chatID = cq.Message.Chat.ID
		origin = &shared.MessageRef{ChatID: cq.Message.Chat.ID, MessageID: cq.Message.MessageID}
	}

	res, err := r.statuses.ChangeStatus(ctx, r.principal(cq.From.ID, chatID), commands.StatusChangeRequest{
		OrderID: act.ID,
		Target:  act.Arg,
		Origin:  origin,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Order status updated to %s!", res.Status), nil
}

func (r *UpdateRouter) showProduct(ctx context.Context, chatID, productID int64) error {
	p, err := r.catalog.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	text, kb := renderProductCard(p)
	if p.ImageRef != nil && *p.ImageRef != "" {
		if _, err := r.messenger.SendPhoto(ctx, chatID, *p.ImageRef, text, kb); err == nil {
			return nil
		}
		slog.Warn("product photo failed, sending text", "product_id", p.ID)
	}
	return r.send(ctx, chatID, text, kb)
}
