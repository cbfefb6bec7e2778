package converter

import (
	"massfit-bot/internal/domain/order"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	params := sqlc.CreateOrderParams{
		UserID:          o.UserID(),
		FulfillmentType: string(o.Fulfillment().Type()),
		Total:           pgconv.NumericFromDecimal(o.Total()),
		Status:          o.Status().String(),
	}
	if loc := o.Fulfillment().Location(); loc != nil {
		params.Latitude = pgtype.Float8{Float64: loc.Latitude, Valid: true}
		params.Longitude = pgtype.Float8{Float64: loc.Longitude, Valid: true}
	}
	params.BranchID = pgconv.Int64PtrToPgtype(o.Fulfillment().BranchID())
	return params
}

func OrderItemToCreateParams(orderID int64, it order.Item) sqlc.CreateOrderItemParams {
	return sqlc.CreateOrderItemParams{
		OrderID:      orderID,
		ProductID:    pgtype.Int8{Int64: it.ProductID, Valid: it.ProductID > 0},
		ProductName:  it.ProductName,
		ProductPrice: pgconv.NumericFromDecimal(it.ProductPrice),
		Quantity:     int32(it.Quantity), // #nosec G115 -- basket quantities are bounded by the int4 column
	}
}

func FulfillmentFromColumns(typ string, lat, lon pgtype.Float8, branchID pgtype.Int8) (order.Fulfillment, error) {
	switch order.FulfillmentType(typ) {
	case order.FulfillmentDelivery:
		if !lat.Valid || !lon.Valid {
			return order.Fulfillment{}, errs.Wrap(order.ErrInvalidFulfillment, "delivery order without coordinates")
		}
		loc, err := order.NewLocation(lat.Float64, lon.Float64)
		if err != nil {
			return order.Fulfillment{}, err
		}
		return order.NewDelivery(loc), nil
	case order.FulfillmentPickup:
		if !branchID.Valid {
			return order.Fulfillment{}, errs.Wrap(order.ErrInvalidFulfillment, "pickup order without branch")
		}
		return order.NewPickup(branchID.Int64)
	default:
		return order.Fulfillment{}, order.ErrInvalidFulfillment
	}
}

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	f, err := FulfillmentFromColumns(row.FulfillmentType, row.Latitude, row.Longitude, row.BranchID)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, errs.Wrap(err, "order total")
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		price, err := pgconv.DecimalFromNumeric(ir.ProductPrice)
		if err != nil {
			return nil, errs.Wrap(err, "order item price")
		}
		items = append(items, order.Item{
			ProductID:    ir.ProductID.Int64,
			ProductName:  ir.ProductName,
			ProductPrice: price,
			Quantity:     int(ir.Quantity),
		})
	}

	return order.Reconstruct(
		row.ID,
		row.UserID,
		f,
		items,
		total,
		order.Status(row.Status),
		pgconv.Int64PtrFromPgtype(row.StaffMessageID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
