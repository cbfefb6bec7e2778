package readstore

import (
	"context"

	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
	"massfit-bot/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type BasketViewQueries interface {
	ListBasketLines(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesRow, error)
}

type BasketReadStore struct {
	queries BasketViewQueries
	db      sqlc.DBTX
}

func NewBasketReadStore(queries BasketViewQueries, db sqlc.DBTX) *BasketReadStore {
	return &BasketReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BasketReadStore) FindByUser(ctx context.Context, userID int64) (*queries.BasketView, error) {
	rows, err := r.queries.ListBasketLines(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list basket lines", err)
	}

	view := &queries.BasketView{
		UserID: userID,
		Lines:  make([]*queries.BasketLineView, 0, len(rows)),
		Total:  decimal.Zero,
	}
	for _, row := range rows {
		price, err := pgconv.DecimalFromNumeric(row.Price)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid product price", err)
		}
		subtotal := price.Mul(decimal.NewFromInt32(row.Quantity))
		view.Lines = append(view.Lines, &queries.BasketLineView{
			ProductID: row.ProductID,
			Name:      row.Name,
			UnitPrice: price,
			Quantity:  int(row.Quantity),
			Subtotal:  subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}
	return view, nil
}
