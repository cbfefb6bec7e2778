package repository

import (
	"context"

	"massfit-bot/internal/domain/basket"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/infra/repository/converter"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
)

type BasketQueries interface {
	IncrementBasketItem(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementBasketItemParams) (int32, error)
	GetBasketItemQuantityForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBasketItemQuantityForUpdateParams) (int32, error)
	UpdateBasketItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBasketItemQuantityParams) error
	DeleteBasketItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBasketItemParams) error
	ListBasketLines(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesRow, error)
	ListBasketLinesForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesForUpdateRow, error)
	ClearBasket(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
	RemoveBasketLines(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveBasketLinesParams) (int64, error)
}

type BasketRepository struct {
	queries BasketQueries
}

func NewBasketRepository(queries BasketQueries) *BasketRepository {
	return &BasketRepository{queries: queries}
}

func (r *BasketRepository) Increment(ctx context.Context, tx sqlc.DBTX, userID, productID int64) (int, error) {
	qty, err := r.queries.IncrementBasketItem(ctx, tx, sqlc.IncrementBasketItemParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to increment basket item", err)
	}
	return int(qty), nil
}

func (r *BasketRepository) Decrement(ctx context.Context, tx sqlc.DBTX, userID, productID int64) (int, error) {
	current, err := r.queries.GetBasketItemQuantityForUpdate(ctx, tx, sqlc.GetBasketItemQuantityForUpdateParams{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to lock basket item", err)
	}

	next := basket.Decremented(int(current))
	if next == 0 {
		if err := r.queries.DeleteBasketItem(ctx, tx, sqlc.DeleteBasketItemParams{UserID: userID, ProductID: productID}); err != nil {
			return 0, infra.WrapRepoErr("failed to delete basket item", err)
		}
		return 0, nil
	}

	if err := r.queries.UpdateBasketItemQuantity(ctx, tx, sqlc.UpdateBasketItemQuantityParams{
		UserID:    userID,
		ProductID: productID,
		Quantity:  int32(next), // #nosec G115 -- next < current, which came from an int4 column
	}); err != nil {
		return 0, infra.WrapRepoErr("failed to update basket item", err)
	}
	return next, nil
}

func (r *BasketRepository) Get(ctx context.Context, tx sqlc.DBTX, userID int64) (basket.Basket, error) {
	rows, err := r.queries.ListBasketLines(ctx, tx, userID)
	if err != nil {
		return basket.Basket{}, infra.WrapRepoErr("failed to list basket", err)
	}
	lines := make([]converter.BasketLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, converter.BasketLine(row))
	}
	return converter.BasketFromLines(userID, lines)
}

func (r *BasketRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, userID int64) (basket.Basket, error) {
	rows, err := r.queries.ListBasketLinesForUpdate(ctx, tx, userID)
	if err != nil {
		return basket.Basket{}, infra.WrapRepoErr("failed to lock basket", err)
	}
	lines := make([]converter.BasketLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, converter.BasketLine(row))
	}
	return converter.BasketFromLines(userID, lines)
}

func (r *BasketRepository) Clear(ctx context.Context, tx sqlc.DBTX, userID int64) (int64, error) {
	n, err := r.queries.ClearBasket(ctx, tx, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear basket", err)
	}
	return n, nil
}

func (r *BasketRepository) RemoveLines(ctx context.Context, tx sqlc.DBTX, userID int64, productIDs []int64) (int64, error) {
	n, err := r.queries.RemoveBasketLines(ctx, tx, sqlc.RemoveBasketLinesParams{
		UserID:     userID,
		ProductIds: productIDs,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to remove basket lines", err)
	}
	return n, nil
}
