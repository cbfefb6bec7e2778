package readstore

import (
	"context"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/usecase/queries"
)

type CatalogViewQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
	ListProductsByCategory(ctx context.Context, db sqlc.DBTX, category string) ([]sqlc.Products, error)
	GetBranchByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error)
	GetBranchByIDForShare(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error)
	ListBranches(ctx context.Context, db sqlc.DBTX) ([]sqlc.Branches, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindProductByID(ctx context.Context, id int64) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return toProductView(row)
}

func (r *CatalogReadStore) ListProductsByCategory(ctx context.Context, category catalog.Category) ([]*queries.ProductView, error) {
	rows, err := r.queries.ListProductsByCategory(ctx, r.db, category.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by category", err)
	}
	views := make([]*queries.ProductView, 0, len(rows))
	for _, row := range rows {
		v, err := toProductView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *CatalogReadStore) FindBranchByID(ctx context.Context, id int64) (*queries.BranchView, error) {
	row, err := r.queries.GetBranchByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("branch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get branch by id", err)
	}
	return toBranchView(row), nil
}

// LockBranchByID holds a share lock on the branch row for the rest of the transaction.
func (r *CatalogReadStore) LockBranchByID(ctx context.Context, id int64) (*queries.BranchView, error) {
	row, err := r.queries.GetBranchByIDForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("branch not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock branch", err)
	}
	return toBranchView(row), nil
}

func (r *CatalogReadStore) ListBranches(ctx context.Context) ([]*queries.BranchView, error) {
	rows, err := r.queries.ListBranches(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list branches", err)
	}
	views := make([]*queries.BranchView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBranchView(row))
	}
	return views, nil
}

func toProductView(row sqlc.Products) (*queries.ProductView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid product price", err)
	}
	return &queries.ProductView{
		ID:          row.ID,
		Name:        row.Name,
		Price:       price,
		Category:    row.Category,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		ImageRef:    pgconv.StringPtrFromPgtype(row.ImageRef),
	}, nil
}

func toBranchView(row sqlc.Branches) *queries.BranchView {
	return &queries.BranchView{
		ID:          row.ID,
		Name:        row.Name,
		Location:    row.Location,
		Description: pgconv.StringPtrFromPgtype(row.Description),
		ImageRef:    pgconv.StringPtrFromPgtype(row.ImageRef),
	}
}
