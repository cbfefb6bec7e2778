package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidCategory = errors.New("invalid product category")

type Category string

const (
	CategoryWeightLoss Category = "weight_loss"
	CategoryWeightGain Category = "weight_gain"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryWeightLoss, CategoryWeightGain:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Product is owned by the catalog; the order engine only reads it.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    Category
	Description *string
	ImageRef    *string
}

type Branch struct {
	ID          int64
	Name        string
	Location    string
	Description *string
	ImageRef    *string
}
