package notification

import (
	"context"
	"log/slog"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/usecase/queries"
	"massfit-bot/internal/usecase/shared"
)

type Config struct {
	StaffChatID int64
}

// Dispatcher publishes order events to the staff channel, the customer and
// the event bus. Every publish is independent and failures are only logged.
type Dispatcher struct {
	messenger shared.Messenger
	orders    queries.OrderQueries
	uow       shared.UnitOfWork
	events    shared.EventPublisher
	cfg       Config
}

func NewDispatcher(
	messenger shared.Messenger,
	orders queries.OrderQueries,
	uow shared.UnitOfWork,
	events shared.EventPublisher,
	cfg Config,
) *Dispatcher {
	return &Dispatcher{
		messenger: messenger,
		orders:    orders,
		uow:       uow,
		events:    events,
		cfg:       cfg,
	}
}

func (d *Dispatcher) AnnounceNewOrder(ctx context.Context, orderID int64) {
	view, err := d.orders.GetByID(ctx, orderID)
	if err != nil {
		slog.Error("failed to load order for announcement", "order_id", orderID, "error", err.Error())
		return
	}

	ref, err := d.messenger.Send(ctx, shared.OutboundMessage{
		ChatID:   d.cfg.StaffChatID,
		Text:     StaffAnnouncement(view),
		Keyboard: StaffControls(orderID),
	})
	if err != nil {
		slog.Error("failed to announce order to staff", "order_id", orderID, "error", err.Error())
	} else {
		if view.FulfillmentType == order.FulfillmentDelivery.String() && view.Latitude != nil && view.Longitude != nil {
			loc := order.Location{Latitude: *view.Latitude, Longitude: *view.Longitude}
			if _, lerr := d.messenger.SendLocation(ctx, d.cfg.StaffChatID, loc, ref.MessageID); lerr != nil {
				slog.Warn("failed to send delivery location to staff", "order_id", orderID, "error", lerr.Error())
			}
		}
		d.storeStaffRef(ctx, orderID, ref)
	}

	d.publish(ctx, shared.EventOrderCreated, view)
}

// AnnounceStatusChange edits the staff announcement and tells the customer.
// The customer notice and the event are built from the change itself, so a
// failed view load only costs the staff edit.
func (d *Dispatcher) AnnounceStatusChange(ctx context.Context, change shared.StatusChange) {
	view, err := d.orders.GetByID(ctx, change.OrderID)
	switch {
	case err != nil:
		slog.Error("failed to load order for status update", "order_id", change.OrderID, "error", err.Error())
	default:
		if ref, ok := staffRef(view, change.Origin); ok {
			if err := d.messenger.Edit(ctx, ref, StaffAnnouncement(view), StaffControls(change.OrderID)); err != nil {
				slog.Warn("failed to edit staff announcement", "order_id", change.OrderID, "error", err.Error())
			}
		} else {
			slog.Warn("no staff announcement to edit", "order_id", change.OrderID)
		}
	}

	if _, err := d.messenger.Send(ctx, shared.OutboundMessage{
		ChatID: change.UserID,
		Text:   CustomerStatusUpdate(change.OrderID, change.Status),
	}); err != nil {
		slog.Warn("failed to notify customer about status", "order_id", change.OrderID, "user_id", change.UserID, "error", err.Error())
	}

	ev := shared.OrderEvent{
		Type:          shared.EventOrderStatusChanged,
		OrderID:       change.OrderID,
		UserID:        change.UserID,
		Status:        change.Status,
		CorrelationID: shared.CorrelationID(ctx),
		OccurredAt:    change.At,
	}
	if view != nil {
		ev.Fulfillment = view.FulfillmentType
		ev.Total = view.Total.StringFixed(2)
	}
	d.emit(ctx, ev)
}

func (d *Dispatcher) storeStaffRef(ctx context.Context, orderID int64, ref shared.MessageRef) {
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().SetStaffMessage(ctx, tx.DB(), orderID, ref)
	})
	if err != nil {
		slog.Warn("failed to store staff message reference", "order_id", orderID, "error", err.Error())
	}
}

func (d *Dispatcher) publish(ctx context.Context, typ shared.OrderEventType, view *queries.OrderView) {
	ev := shared.OrderEvent{
		Type:          typ,
		OrderID:       view.ID,
		UserID:        view.UserID,
		Status:        view.Status,
		Fulfillment:   view.FulfillmentType,
		Total:         view.Total.StringFixed(2),
		CorrelationID: shared.CorrelationID(ctx),
		OccurredAt:    view.UpdatedAt,
	}
	d.emit(ctx, ev)
}

func (d *Dispatcher) emit(ctx context.Context, ev shared.OrderEvent) {
	if err := d.events.Publish(ctx, ev); err != nil {
		slog.Warn("failed to publish order event", "type", ev.Type, "order_id", ev.OrderID, "error", err.Error())
	}
}

// staffRef prefers the stored announcement and falls back to the message the
// staff action came from.
func staffRef(view *queries.OrderView, origin *shared.MessageRef) (shared.MessageRef, bool) {
	if view.StaffChatID != nil && view.StaffMessageID != nil {
		return shared.MessageRef{ChatID: *view.StaffChatID, MessageID: *view.StaffMessageID}, true
	}
	if origin != nil && !origin.IsZero() {
		return *origin, true
	}
	return shared.MessageRef{}, false
}
