//go:build unit || e2e

package builder

import (
	"massfit-bot/internal/domain/basket"
	"massfit-bot/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BasketBuilder struct {
	UserID int64
	Lines  []basket.Line
}

// NewBasketBuilder starts with two units of Product A at 10.00.
func NewBasketBuilder() *BasketBuilder {
	return &BasketBuilder{
		UserID: 100200,
		Lines: []basket.Line{
			{ProductID: 1, Name: "Product A", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		},
	}
}

func (b *BasketBuilder) With(mutate func(*BasketBuilder)) *BasketBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BasketBuilder) BuildDomain() basket.Basket {
	lines := make([]basket.Line, len(b.Lines))
	copy(lines, b.Lines)
	return basket.Basket{UserID: b.UserID, Lines: lines}
}

func (b *BasketBuilder) BuildView() *queries.BasketView {
	view := &queries.BasketView{UserID: b.UserID, Lines: []*queries.BasketLineView{}, Total: decimal.Zero}
	for _, l := range b.Lines {
		view.Lines = append(view.Lines, &queries.BasketLineView{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
		view.Total = view.Total.Add(l.Subtotal())
	}
	return view
}

// Fluent builder methods
func (b *BasketBuilder) WithUserID(id int64) *BasketBuilder {
	b.UserID = id
	return b
}

func (b *BasketBuilder) WithLine(productID int64, name, price string, qty int) *BasketBuilder {
	b.Lines = append(b.Lines, basket.Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	})
	return b
}

func (b *BasketBuilder) Empty() *BasketBuilder {
	b.Lines = nil
	return b
}
