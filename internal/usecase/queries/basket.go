package queries

import (
	"context"

	"github.com/shopspring/decimal"
)

type BasketLineView struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type BasketView struct {
	UserID int64             `json:"user_id"`
	Lines  []*BasketLineView `json:"lines"`
	Total  decimal.Decimal   `json:"total"`
}

func (b *BasketView) IsEmpty() bool {
	return b == nil || len(b.Lines) == 0
}

type BasketReadStore interface {
	FindByUser(ctx context.Context, userID int64) (*BasketView, error)
}

type BasketQueries interface {
	GetBasket(ctx context.Context, userID int64) (*BasketView, error)
}

type basketQueriesImpl struct {
	store BasketReadStore
}

func NewBasketQueries(store BasketReadStore) BasketQueries {
	return &basketQueriesImpl{store: store}
}

func (q *basketQueriesImpl) GetBasket(ctx context.Context, userID int64) (*BasketView, error) {
	return q.store.FindByUser(ctx, userID)
}
