package repository

import (
	"context"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/infra/repository/converter"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.CreateOrderRow, error)
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error
	GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
	UpdateOrderStatusFromPending(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusFromPendingParams) (int64, error)
	SetOrderStaffMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.SetOrderStaffMessageParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// Create writes the header and every item snapshot; the caller owns the transaction.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error) {
	row, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		if err := r.queries.CreateOrderItem(ctx, tx, converter.OrderItemToCreateParams(row.ID, it)); err != nil {
			return 0, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	o.AssignID(row.ID)
	return row.ID, nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID int64) (*order.Order, error) {
	row, err := r.queries.GetOrderForUpdate(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, tx, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	o, err := converter.OrderFromRows(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt order row", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	n, err := r.queries.UpdateOrderStatusFromPending(ctx, tx, sqlc.UpdateOrderStatusFromPendingParams{
		ID:     o.ID(),
		Status: o.Status().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order is no longer pending", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) SetStaffMessage(ctx context.Context, tx sqlc.DBTX, orderID int64, ref shared.MessageRef) error {
	n, err := r.queries.SetOrderStaffMessage(ctx, tx, sqlc.SetOrderStaffMessageParams{
		ID:             orderID,
		StaffChatID:    pgtype.Int8{Int64: ref.ChatID, Valid: true},
		StaffMessageID: pgtype.Int8{Int64: ref.MessageID, Valid: true},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store staff message reference", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}
