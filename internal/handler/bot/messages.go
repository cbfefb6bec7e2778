package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/errs"
)

func (r *UpdateRouter) handleMessage(ctx context.Context, u *user.User, m *telegram.Message) error {
	chatID := m.Chat.ID
	switch {
	case m.Contact != nil:
		return r.onContact(ctx, u, m)
	case m.Location != nil:
		return r.onLocation(ctx, u.ID(), chatID, m.Location)
	}

	text := strings.TrimSpace(m.Text)
	switch {
	case text == "/start":
		if !u.HasPhone() {
			return r.sendMenu(ctx, chatID, textPhonePrompt, phoneMenu())
		}
		return r.sendMenu(ctx, chatID, textWelcome, mainMenu())
	case text == "/basket" || text == menuMyOrders:
		return r.showBasket(ctx, u.ID(), chatID)
	case text == "/catalog":
		return r.sendMenu(ctx, chatID, textWelcome, mainMenu())
	case text == menuLoseWeight:
		return r.showCategory(ctx, chatID, catalog.CategoryWeightLoss)
	case text == menuGainWeight:
		return r.showCategory(ctx, chatID, catalog.CategoryWeightGain)
	case text == "/cancel":
		existed, err := r.checkout.Cancel(ctx, u.ID())
		if err != nil {
			return err
		}
		if !existed {
			return r.send(ctx, chatID, textNothingToStop, nil)
		}
		return r.send(ctx, chatID, textCancelled, nil)
	case strings.HasPrefix(text, "/reset"):
		return r.onReset(ctx, u.ID(), chatID, text)
	}

	return r.onFreeText(ctx, u.ID(), chatID)
}

func (r *UpdateRouter) onContact(ctx context.Context, u *user.User, m *telegram.Message) error {
	// Only the sender's own number is accepted.
	if m.Contact.UserID != 0 && m.Contact.UserID != u.ID() {
		return r.sendMenu(ctx, m.Chat.ID, textPhonePrompt, phoneMenu())
	}
	if _, err := r.users.CapturePhone(ctx, u.ID(), m.Contact.PhoneNumber); err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			return r.sendMenu(ctx, m.Chat.ID, textPhonePrompt, phoneMenu())
		}
		return err
	}
	return r.sendMenu(ctx, m.Chat.ID, textWelcome, mainMenu())
}

func (r *UpdateRouter) onLocation(ctx context.Context, userID, chatID int64, loc *telegram.Location) error {
	_, err := r.checkout.ProvideLocation(ctx, userID, loc.Latitude, loc.Longitude)
	switch {
	case err == nil:
		return r.send(ctx, chatID, renderLocationReceived(loc.Latitude, loc.Longitude), confirmKeyboard())
	case errs.Is(err, errs.ErrInvalidLocation):
		return r.send(ctx, chatID, textDelivery, nil)
	case errs.Is(err, errs.ErrInvalidCheckoutStep):
		return r.send(ctx, chatID, alertStepExpired, nil)
	}
	return err
}

func (r *UpdateRouter) onReset(ctx context.Context, actorID, chatID int64, text string) error {
	target, ok := parseResetCommand(text)
	if !ok {
		return r.send(ctx, chatID, "Usage: /reset <user id>", nil)
	}
	existed, err := r.checkout.ResetFor(ctx, r.principal(actorID, chatID), target)
	if err != nil {
		if errs.Is(err, errs.ErrForbidden) {
			return r.send(ctx, chatID, alertForbidden, nil)
		}
		return err
	}
	slog.Info("checkout session reset by admin", "admin_id", actorID, "target_id", target, "existed", existed)
	if !existed {
		return r.send(ctx, chatID, fmt.Sprintf("User %d has no active checkout.", target), nil)
	}
	return r.send(ctx, chatID, fmt.Sprintf("Checkout of user %d has been reset.", target), nil)
}

// onFreeText re-prompts a user who is expected to send a location.
func (r *UpdateRouter) onFreeText(ctx context.Context, userID, chatID int64) error {
	s, err := r.checkout.Current(ctx, userID)
	if err != nil {
		return err
	}
	if s.State() == checkout.StateAwaitingLocation {
		return r.send(ctx, chatID, textDelivery, nil)
	}
	return r.sendMenu(ctx, chatID, textUseMenu, mainMenu())
}

func (r *UpdateRouter) showCategory(ctx context.Context, chatID int64, c catalog.Category) error {
	products, err := r.catalog.ListProducts(ctx, c.String())
	if err != nil {
		return err
	}
	text, kb := renderCategory(c, products)
	return r.send(ctx, chatID, text, kb)
}
