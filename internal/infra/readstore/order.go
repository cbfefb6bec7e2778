package readstore

import (
	"context"

	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OrderViewQueries interface {
	GetOrderViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetOrderViewByIDRow, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order view by id", err)
	}

	itemRows, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order total", err)
	}

	items := make([]*queries.OrderItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.ProductPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order item price", err)
		}
		items = append(items, &queries.OrderItemView{
			ProductID:    pgconv.Int64PtrFromPgtype(ir.ProductID),
			ProductName:  ir.ProductName,
			ProductPrice: price,
			Quantity:     int(ir.Quantity),
			Subtotal:     price.Mul(decimal.NewFromInt32(ir.Quantity)),
		})
	}

	return &queries.OrderView{
		ID:               row.ID,
		UserID:           row.UserID,
		CustomerName:     row.CustomerName,
		CustomerUsername: pgconv.StringPtrFromPgtype(row.CustomerUsername),
		CustomerPhone:    pgconv.StringPtrFromPgtype(row.CustomerPhone),
		FulfillmentType:  row.FulfillmentType,
		Latitude:         pgconv.Float64PtrFromPgtype(row.Latitude),
		Longitude:        pgconv.Float64PtrFromPgtype(row.Longitude),
		BranchID:         pgconv.Int64PtrFromPgtype(row.BranchID),
		BranchName:       pgconv.StringPtrFromPgtype(row.BranchName),
		BranchLocation:   pgconv.StringPtrFromPgtype(row.BranchLocation),
		Items:            items,
		Total:            total,
		Status:           row.Status,
		StaffChatID:      pgconv.Int64PtrFromPgtype(row.StaffChatID),
		StaffMessageID:   pgconv.Int64PtrFromPgtype(row.StaffMessageID),
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
