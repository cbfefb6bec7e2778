package queries

import (
	"context"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ProductView struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description *string         `json:"description,omitempty"`
	ImageRef    *string         `json:"image_ref,omitempty"`
}

type BranchView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description *string `json:"description,omitempty"`
	ImageRef    *string `json:"image_ref,omitempty"`
}

type CatalogReadStore interface {
	FindProductByID(ctx context.Context, id int64) (*ProductView, error)
	ListProductsByCategory(ctx context.Context, category catalog.Category) ([]*ProductView, error)
	FindBranchByID(ctx context.Context, id int64) (*BranchView, error)
	ListBranches(ctx context.Context) ([]*BranchView, error)
}

type CatalogQueries interface {
	GetProduct(ctx context.Context, id int64) (*ProductView, error)
	ListProducts(ctx context.Context, category string) ([]*ProductView, error)
	GetBranch(ctx context.Context, id int64) (*BranchView, error)
	ListBranches(ctx context.Context) ([]*BranchView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id int64) (*ProductView, error) {
	p, err := q.store.FindProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context, category string) ([]*ProductView, error) {
	c, err := catalog.NewCategory(category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return q.store.ListProductsByCategory(ctx, c)
}

func (q *catalogQueriesImpl) GetBranch(ctx context.Context, id int64) (*BranchView, error) {
	b, err := q.store.FindBranchByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBranchNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *catalogQueriesImpl) ListBranches(ctx context.Context) ([]*BranchView, error) {
	return q.store.ListBranches(ctx)
}
