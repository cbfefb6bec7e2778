//go:build unit || e2e

package builder

import (
	"time"

	"massfit-bot/internal/domain/order"
	reqdto "massfit-bot/internal/handler/dto/request"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/pkg/ptr"
	"massfit-bot/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID               int64
	UserID           int64
	CustomerName     string
	CustomerUsername *string
	CustomerPhone    *string
	Fulfillment      order.FulfillmentType
	Latitude         float64
	Longitude        float64
	BranchID         int64
	BranchName       string
	BranchLocation   string
	Items            []order.Item
	Status           order.Status
	StaffChatID      *int64
	StaffMessageID   *int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewOrderBuilder describes a pending pickup order of two units of Product A.
func NewOrderBuilder() *OrderBuilder {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &OrderBuilder{
		ID:               42,
		UserID:           100200,
		CustomerName:     "Alisher Karimov",
		CustomerUsername: ptr.Of("alisher"),
		CustomerPhone:    ptr.Of("+998901234567"),
		Fulfillment:      order.FulfillmentPickup,
		BranchID:         3,
		BranchName:       "Chilonzor",
		BranchLocation:   "Chilonzor 9, Tashkent",
		Items: []order.Item{
			{ProductID: 1, ProductName: "Product A", ProductPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		},
		Status:    order.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (o *OrderBuilder) fulfillment() order.Fulfillment {
	if o.Fulfillment == order.FulfillmentDelivery {
		return order.NewDelivery(order.Location{Latitude: o.Latitude, Longitude: o.Longitude})
	}
	f, _ := order.NewPickup(o.BranchID)
	return f
}

// Build methods
func (o *OrderBuilder) BuildDomain() *order.Order {
	return order.Reconstruct(o.ID, o.UserID, o.fulfillment(), o.Items, o.total(), o.Status, o.StaffMessageID, o.CreatedAt, o.UpdatedAt)
}

func (o *OrderBuilder) BuildView() *queries.OrderView {
	view := &queries.OrderView{
		ID:               o.ID,
		UserID:           o.UserID,
		CustomerName:     o.CustomerName,
		CustomerUsername: o.CustomerUsername,
		CustomerPhone:    o.CustomerPhone,
		FulfillmentType:  o.Fulfillment.String(),
		Items:            []*queries.OrderItemView{},
		Total:            o.total(),
		Status:           o.Status.String(),
		StaffChatID:      o.StaffChatID,
		StaffMessageID:   o.StaffMessageID,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if o.Fulfillment == order.FulfillmentDelivery {
		lat, lon := o.Latitude, o.Longitude
		view.Latitude, view.Longitude = &lat, &lon
	} else {
		id, name, loc := o.BranchID, o.BranchName, o.BranchLocation
		view.BranchID, view.BranchName, view.BranchLocation = &id, &name, &loc
	}
	for _, it := range o.Items {
		pid := it.ProductID
		view.Items = append(view.Items, &queries.OrderItemView{
			ProductID:    &pid,
			ProductName:  it.ProductName,
			ProductPrice: it.ProductPrice,
			Quantity:     it.Quantity,
			Subtotal:     it.Subtotal(),
		})
	}
	return view
}

func (o *OrderBuilder) BuildInfra() sqlc.Orders {
	row := sqlc.Orders{
		ID:              o.ID,
		UserID:          o.UserID,
		FulfillmentType: o.Fulfillment.String(),
		Total:           pgconv.NumericFromDecimal(o.total()),
		Status:          o.Status.String(),
		StaffChatID:     pgconv.Int64PtrToPgtype(o.StaffChatID),
		StaffMessageID:  pgconv.Int64PtrToPgtype(o.StaffMessageID),
		CreatedAt:       pgconv.TimeToPgtype(o.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(o.UpdatedAt),
	}
	if o.Fulfillment == order.FulfillmentDelivery {
		lat, lon := o.Latitude, o.Longitude
		row.Latitude = pgconv.Float64PtrToPgtype(&lat)
		row.Longitude = pgconv.Float64PtrToPgtype(&lon)
	} else {
		id := o.BranchID
		row.BranchID = pgconv.Int64PtrToPgtype(&id)
	}
	return row
}

// BuildInfraViewRow is the joined row the order read store consumes.
func (o *OrderBuilder) BuildInfraViewRow() sqlc.GetOrderViewByIDRow {
	row := o.BuildInfra()
	view := sqlc.GetOrderViewByIDRow{
		ID:               row.ID,
		UserID:           row.UserID,
		FulfillmentType:  row.FulfillmentType,
		Latitude:         row.Latitude,
		Longitude:        row.Longitude,
		BranchID:         row.BranchID,
		Total:            row.Total,
		Status:           row.Status,
		StaffChatID:      row.StaffChatID,
		StaffMessageID:   row.StaffMessageID,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
		CustomerName:     o.CustomerName,
		CustomerUsername: pgconv.StringPtrToPgtype(o.CustomerUsername),
		CustomerPhone:    pgconv.StringPtrToPgtype(o.CustomerPhone),
	}
	if o.Fulfillment == order.FulfillmentPickup {
		view.BranchName = pgconv.StringToPgtype(o.BranchName)
		view.BranchLocation = pgconv.StringToPgtype(o.BranchLocation)
	}
	return view
}

func (o *OrderBuilder) BuildInfraItems() []sqlc.OrderItems {
	rows := make([]sqlc.OrderItems, 0, len(o.Items))
	for i, it := range o.Items {
		pid := it.ProductID
		rows = append(rows, sqlc.OrderItems{
			ID:           int64(i + 1),
			OrderID:      o.ID,
			ProductID:    pgconv.Int64PtrToPgtype(&pid),
			ProductName:  it.ProductName,
			ProductPrice: pgconv.NumericFromDecimal(it.ProductPrice),
			Quantity:     int32(it.Quantity),
		})
	}
	return rows
}

func (o *OrderBuilder) BuildUpdateStatusRequestDTO(status string) reqdto.UpdateOrderStatusRequest {
	return reqdto.UpdateOrderStatusRequest{Status: status}
}

// Fluent builder methods
func (o *OrderBuilder) WithID(id int64) *OrderBuilder {
	o.ID = id
	return o
}

func (o *OrderBuilder) WithStatus(s order.Status) *OrderBuilder {
	o.Status = s
	return o
}

func (o *OrderBuilder) AsDelivery(lat, lon float64) *OrderBuilder {
	o.Fulfillment = order.FulfillmentDelivery
	o.Latitude, o.Longitude = lat, lon
	o.BranchID, o.BranchName, o.BranchLocation = 0, "", ""
	return o
}

func (o *OrderBuilder) WithoutPhone() *OrderBuilder {
	o.CustomerPhone = nil
	return o
}

func (o *OrderBuilder) WithStaffMessage(chatID, messageID int64) *OrderBuilder {
	o.StaffChatID = &chatID
	o.StaffMessageID = &messageID
	return o
}

func (o *OrderBuilder) WithItem(productID int64, name, price string, qty int) *OrderBuilder {
	o.Items = append(o.Items, order.Item{
		ProductID:    productID,
		ProductName:  name,
		ProductPrice: decimal.RequireFromString(price),
		Quantity:     qty,
	})
	return o
}
