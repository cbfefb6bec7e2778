package queries

import (
	"context"
	"time"

	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	ProductID    *int64          `json:"product_id,omitempty"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderView is everything needed to render an order for staff or the customer.
type OrderView struct {
	ID               int64            `json:"id"`
	UserID           int64            `json:"user_id"`
	CustomerName     string           `json:"customer_name"`
	CustomerUsername *string          `json:"customer_username,omitempty"`
	CustomerPhone    *string          `json:"customer_phone,omitempty"`
	FulfillmentType  string           `json:"fulfillment_type"`
	Latitude         *float64         `json:"latitude,omitempty"`
	Longitude        *float64         `json:"longitude,omitempty"`
	BranchID         *int64           `json:"branch_id,omitempty"`
	BranchName       *string          `json:"branch_name,omitempty"`
	BranchLocation   *string          `json:"branch_location,omitempty"`
	Items            []*OrderItemView `json:"items"`
	Total            decimal.Decimal  `json:"total"`
	Status           string           `json:"status"`
	StaffChatID      *int64           `json:"staff_chat_id,omitempty"`
	StaffMessageID   *int64           `json:"staff_message_id,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id int64) (*OrderView, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, id int64) (*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id int64) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}
