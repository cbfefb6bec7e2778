package shared

import (
	"github.com/shopspring/decimal"
)

// Minimal snapshot for command read operations
type ProductSnapshot struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}

type BranchSnapshot struct {
	ID       int64
	Name     string
	Location string
}
