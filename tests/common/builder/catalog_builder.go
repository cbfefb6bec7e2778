//go:build unit || e2e

package builder

import (
	"time"

	"massfit-bot/internal/domain/catalog"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/usecase/queries"
	"massfit-bot/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Category    catalog.Category
	Description *string
	ImageRef    *string
}

func NewProductBuilder() *ProductBuilder {
	desc := "Plant protein, 30 servings"
	return &ProductBuilder{
		ID:          1,
		Name:        "Product A",
		Price:       decimal.RequireFromString("10.00"),
		Category:    catalog.CategoryWeightLoss,
		Description: &desc,
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

// Build methods
func (p *ProductBuilder) BuildDomain() catalog.Product {
	return catalog.Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		ImageRef:    p.ImageRef,
	}
}

func (p *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category.String(),
		Description: p.Description,
		ImageRef:    p.ImageRef,
	}
}

func (p *ProductBuilder) BuildInfra() sqlc.Products {
	return sqlc.Products{
		ID:          p.ID,
		Name:        p.Name,
		Price:       pgconv.NumericFromDecimal(p.Price),
		Category:    p.Category.String(),
		Description: pgconv.StringPtrToPgtype(p.Description),
		ImageRef:    pgconv.StringPtrToPgtype(p.ImageRef),
		CreatedAt:   pgconv.TimeToPgtype(time.Now()),
	}
}

// Fluent builder methods
func (p *ProductBuilder) WithID(id int64) *ProductBuilder {
	p.ID = id
	return p
}

func (p *ProductBuilder) WithName(name string) *ProductBuilder {
	p.Name = name
	return p
}

func (p *ProductBuilder) WithPrice(price string) *ProductBuilder {
	p.Price = decimal.RequireFromString(price)
	return p
}

func (p *ProductBuilder) WithCategory(c catalog.Category) *ProductBuilder {
	p.Category = c
	return p
}

func (p *ProductBuilder) WithImage(ref string) *ProductBuilder {
	p.ImageRef = &ref
	return p
}

type BranchBuilder struct {
	ID          int64
	Name        string
	Location    string
	Description *string
	ImageRef    *string
}

func NewBranchBuilder() *BranchBuilder {
	return &BranchBuilder{
		ID:       3,
		Name:     "Chilonzor",
		Location: "Chilonzor 9, Tashkent",
	}
}

func (b *BranchBuilder) With(mutate func(*BranchBuilder)) *BranchBuilder {
	mutate(b)
	return b
}

func (b *BranchBuilder) BuildDomain() catalog.Branch {
	return catalog.Branch{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		ImageRef:    b.ImageRef,
	}
}

func (b *BranchBuilder) BuildSnapshot() *shared.BranchSnapshot {
	return &shared.BranchSnapshot{ID: b.ID, Name: b.Name, Location: b.Location}
}

func (b *BranchBuilder) BuildView() *queries.BranchView {
	return &queries.BranchView{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
		ImageRef:    b.ImageRef,
	}
}

func (b *BranchBuilder) BuildInfra() sqlc.Branches {
	return sqlc.Branches{
		ID:          b.ID,
		Name:        b.Name,
		Location:    b.Location,
		Description: pgconv.StringPtrToPgtype(b.Description),
		ImageRef:    pgconv.StringPtrToPgtype(b.ImageRef),
		CreatedAt:   pgconv.TimeToPgtype(time.Now()),
	}
}

func (b *BranchBuilder) WithID(id int64) *BranchBuilder {
	b.ID = id
	return b
}

func (b *BranchBuilder) WithName(name string) *BranchBuilder {
	b.Name = name
	return b
}

func (b *BranchBuilder) WithImage(ref string) *BranchBuilder {
	b.ImageRef = &ref
	return b
}
