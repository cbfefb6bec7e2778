package basket

import (
	"github.com/shopspring/decimal"
)

// Line is a basket entry joined with the live catalog record.
type Line struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Basket struct {
	UserID int64
	Lines  []Line
}

func (b Basket) IsEmpty() bool {
	return len(b.Lines) == 0
}

func (b Basket) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (b Basket) ProductIDs() []int64 {
	ids := make([]int64, 0, len(b.Lines))
	for _, l := range b.Lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

func (b Basket) QuantityOf(productID int64) int {
	for _, l := range b.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// Decremented returns the quantity after removing one unit. Zero means the
// entry must be deleted.
func Decremented(current int) int {
	if current <= 1 {
		return 0
	}
	return current - 1
}
