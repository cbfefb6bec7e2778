package order

import (
	"time"

	"massfit-bot/internal/domain/basket"

	"github.com/shopspring/decimal"
)

// Item is a price snapshot taken at order creation; later catalog edits never
// reach it.
type Item struct {
	ProductID    int64
	ProductName  string
	ProductPrice decimal.Decimal
	Quantity     int
}

func (i Item) Subtotal() decimal.Decimal {
	return i.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	id             int64
	userID         int64
	fulfillment    Fulfillment
	items          []Item
	total          decimal.Decimal
	status         Status
	staffMessageID *int64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewFromBasket(b basket.Basket, f Fulfillment, now time.Time) (*Order, error) {
	if b.IsEmpty() {
		return nil, ErrEmptyBasket
	}
	if !f.Type().IsValid() {
		return nil, ErrInvalidFulfillment
	}

	items := make([]Item, 0, len(b.Lines))
	total := decimal.Zero
	for _, l := range b.Lines {
		item := Item{
			ProductID:    l.ProductID,
			ProductName:  l.Name,
			ProductPrice: l.UnitPrice,
			Quantity:     l.Quantity,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}

	return &Order{
		userID:      b.UserID,
		fulfillment: f,
		items:       items,
		total:       total,
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func Reconstruct(
	id, userID int64,
	fulfillment Fulfillment,
	items []Item,
	total decimal.Decimal,
	status Status,
	staffMessageID *int64,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:             id,
		userID:         userID,
		fulfillment:    fulfillment,
		items:          items,
		total:          total,
		status:         status,
		staffMessageID: staffMessageID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// TransitionTo applies a staff decision. Re-applying the current terminal
// status reports changed=false so callers can skip duplicate notifications.
func (o *Order) TransitionTo(target Status, now time.Time) (bool, error) {
	if !target.IsTerminal() {
		return false, ErrInvalidStatus
	}
	if o.status == target {
		return false, nil
	}
	if o.status.IsTerminal() {
		return false, ErrStatusTransition
	}
	o.status = target
	o.updatedAt = now
	return true, nil
}

// AssignID is called once the header row exists.
func (o *Order) AssignID(id int64) {
	o.id = id
}

func (o *Order) ID() int64                { return o.id }
func (o *Order) UserID() int64            { return o.userID }
func (o *Order) Fulfillment() Fulfillment { return o.fulfillment }
func (o *Order) Items() []Item            { return o.items }
func (o *Order) Total() decimal.Decimal   { return o.total }
func (o *Order) Status() Status           { return o.status }
func (o *Order) StaffMessageID() *int64   { return o.staffMessageID }
func (o *Order) CreatedAt() time.Time     { return o.createdAt }
func (o *Order) UpdatedAt() time.Time     { return o.updatedAt }
