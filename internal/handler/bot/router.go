package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra/telegram"
	"massfit-bot/internal/pkg/config"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/internal/usecase/queries"
	"massfit-bot/internal/usecase/shared"
)

// UpdateRouter turns one inbound update into use case calls and replies.
type UpdateRouter struct {
	users     commands.UserCommands
	baskets   commands.BasketCommands
	checkout  commands.CheckoutCommands
	finalizer commands.OrderFinalizer
	statuses  commands.OrderStatusCommands
	catalog   queries.CatalogQueries
	basketQ   queries.BasketQueries
	messenger shared.Messenger
	cfg       config.BotConfig
}

func NewUpdateRouter(
	users commands.UserCommands,
	baskets commands.BasketCommands,
	checkout commands.CheckoutCommands,
	finalizer commands.OrderFinalizer,
	statuses commands.OrderStatusCommands,
	catalog queries.CatalogQueries,
	basketQ queries.BasketQueries,
	messenger shared.Messenger,
	cfg config.Config,
) *UpdateRouter {
	return &UpdateRouter{
		users:     users,
		baskets:   baskets,
		checkout:  checkout,
		finalizer: finalizer,
		statuses:  statuses,
		catalog:   catalog,
		basketQ:   basketQ,
		messenger: messenger,
		cfg:       cfg.Bot,
	}
}

// Dispatch handles one update under its own deadline, detached from the
// caller so a dropped webhook connection does not abort a finalize midway.
func (r *UpdateRouter) Dispatch(parent context.Context, upd telegram.Update) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), r.cfg.HandlerTimeout)
	defer cancel()
	ctx = shared.WithCorrelationID(ctx, "")

	log := slog.With("update_id", upd.UpdateID, "correlation_id", shared.CorrelationID(ctx))
	log.Debug("update received")
	if err := r.Handle(ctx, upd); err != nil {
		log.Error("update handling failed", "error", err.Error())
	}
}

func (r *UpdateRouter) Handle(ctx context.Context, upd telegram.Update) error {
	from := upd.Sender()
	if from == nil || from.IsBot {
		return nil
	}

	var username *string
	if from.Username != "" {
		username = &from.Username
	}
	u, err := r.users.Register(ctx, commands.RegisterUserRequest{
		ID:        from.ID,
		FirstName: from.FirstName,
		LastName:  from.LastName,
		Username:  username,
	})
	if err != nil {
		return errs.Wrap(err, "register user")
	}

	switch {
	case upd.CallbackQuery != nil:
		return r.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		return r.handleMessage(ctx, u, upd.Message)
	}
	return nil
}

func (r *UpdateRouter) principal(userID, chatID int64) user.Principal {
	switch {
	case r.cfg.IsAdmin(userID):
		return user.Principal{ID: userID, Role: user.RoleAdmin}
	case chatID == r.cfg.StaffChatID:
		return user.Principal{ID: userID, Role: user.RoleStaff}
	default:
		return user.Principal{ID: userID, Role: user.RoleCustomer}
	}
}

func (r *UpdateRouter) send(ctx context.Context, chatID int64, text string, kb shared.Keyboard) error {
	_, err := r.messenger.Send(ctx, shared.OutboundMessage{ChatID: chatID, Text: text, Keyboard: kb})
	return err
}

func (r *UpdateRouter) sendMenu(ctx context.Context, chatID int64, text string, menu [][]shared.MenuButton) error {
	_, err := r.messenger.Send(ctx, shared.OutboundMessage{ChatID: chatID, Text: text, Menu: menu})
	return err
}

func (r *UpdateRouter) showBasket(ctx context.Context, userID, chatID int64) error {
	b, err := r.basketQ.GetBasket(ctx, userID)
	if err != nil {
		return err
	}
	text, kb := renderBasket(b)
	return r.send(ctx, chatID, text, kb)
}

// failureAlert maps a use case error to the short alert shown on the
// pressed button. ok is false for failures that are not the user's doing.
func failureAlert(err error) (text string, ok bool) {
	switch {
	case errs.Is(err, errs.ErrProductNotFound):
		return alertProductGone, true
	case errs.Is(err, errs.ErrBranchNotFound):
		return alertBranchGone, true
	case errs.Is(err, errs.ErrOrderNotFound):
		return alertOrderGone, true
	case errs.Is(err, errs.ErrEmptyBasket):
		return alertEmptyBasket, true
	case errs.Is(err, errs.ErrInvalidCheckoutStep):
		return alertStepExpired, true
	case errs.Is(err, errs.ErrForbidden):
		return alertForbidden, true
	case errs.Is(err, errs.ErrInvalidStatusTransition):
		return alertStatusSettled, true
	case errs.Is(err, errs.ErrInvalidStatus), errs.Is(err, errs.ErrInvalidLocation):
		return alertStepExpired, true
	}
	return "", false
}

func parseResetCommand(text string) (int64, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
