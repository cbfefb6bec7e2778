//go:build unit

package repository

import (
	"context"
	"testing"

	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBasketQueries struct {
	mock.Mock
}

func (m *MockBasketQueries) IncrementBasketItem(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementBasketItemParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockBasketQueries) GetBasketItemQuantityForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBasketItemQuantityForUpdateParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockBasketQueries) RemoveBasketLines(ctx context.Context, db sqlc.DBTX, arg sqlc.RemoveBasketLinesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBasketQueries) UpdateBasketItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBasketItemQuantityParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBasketQueries) DeleteBasketItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBasketItemParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockBasketQueries) ListBasketLines(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListBasketLinesRow), args.Error(1)
}

func (m *MockBasketQueries) ListBasketLinesForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesForUpdateRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListBasketLinesForUpdateRow), args.Error(1)
}

func (m *MockBasketQueries) ClearBasket(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestBasketRepository_Increment(t *testing.T) {
	params := sqlc.IncrementBasketItemParams{UserID: 100200, ProductID: 1}

	t.Run("returns the new quantity", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("IncrementBasketItem", mock.Anything, mock.Anything, params).Return(int32(3), nil)

		qty, err := NewBasketRepository(mockQueries).Increment(context.Background(), nil, 100200, 1)

		require.NoError(t, err)
		assert.Equal(t, 3, qty)
	})

	t.Run("unknown product surfaces as foreign key violation", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("IncrementBasketItem", mock.Anything, mock.Anything, params).
			Return(int32(0), &pgconn.PgError{Code: "23503"})

		_, err := NewBasketRepository(mockQueries).Increment(context.Background(), nil, 100200, 1)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestBasketRepository_Decrement(t *testing.T) {
	key := sqlc.GetBasketItemQuantityForUpdateParams{UserID: 100200, ProductID: 1}
	del := sqlc.DeleteBasketItemParams{UserID: 100200, ProductID: 1}

	t.Run("absent entry is a no-op", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("GetBasketItemQuantityForUpdate", mock.Anything, mock.Anything, key).Return(int32(0), pgx.ErrNoRows)

		qty, err := NewBasketRepository(mockQueries).Decrement(context.Background(), nil, 100200, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, qty)
		mockQueries.AssertNotCalled(t, "DeleteBasketItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("last unit removes the entry", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("GetBasketItemQuantityForUpdate", mock.Anything, mock.Anything, key).Return(int32(1), nil)
		mockQueries.On("DeleteBasketItem", mock.Anything, mock.Anything, del).Return(nil)

		qty, err := NewBasketRepository(mockQueries).Decrement(context.Background(), nil, 100200, 1)

		require.NoError(t, err)
		assert.Equal(t, 0, qty)
		mockQueries.AssertExpectations(t)
	})

	t.Run("several units are reduced by one", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("GetBasketItemQuantityForUpdate", mock.Anything, mock.Anything, key).Return(int32(3), nil)
		mockQueries.On("UpdateBasketItemQuantity", mock.Anything, mock.Anything, sqlc.UpdateBasketItemQuantityParams{
			UserID: 100200, ProductID: 1, Quantity: 2,
		}).Return(nil)

		qty, err := NewBasketRepository(mockQueries).Decrement(context.Background(), nil, 100200, 1)

		require.NoError(t, err)
		assert.Equal(t, 2, qty)
		mockQueries.AssertExpectations(t)
	})

	t.Run("lock failure", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("GetBasketItemQuantityForUpdate", mock.Anything, mock.Anything, key).Return(int32(0), assert.AnError)

		_, err := NewBasketRepository(mockQueries).Decrement(context.Background(), nil, 100200, 1)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBasketRepository_GetForUpdate(t *testing.T) {
	t.Run("lines keep their stored prices", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("ListBasketLinesForUpdate", mock.Anything, mock.Anything, int64(100200)).Return([]sqlc.ListBasketLinesForUpdateRow{
			{ProductID: 1, Name: "Product A", Price: pgconv.NumericFromDecimal(decimal.RequireFromString("10.00")), Quantity: 2},
			{ProductID: 2, Name: "Product B", Price: pgconv.NumericFromDecimal(decimal.RequireFromString("5.50")), Quantity: 1},
		}, nil)

		b, err := NewBasketRepository(mockQueries).GetForUpdate(context.Background(), nil, 100200)

		require.NoError(t, err)
		require.Len(t, b.Lines, 2)
		assert.Equal(t, int64(100200), b.UserID)
		assert.True(t, decimal.RequireFromString("25.50").Equal(b.Total()))
	})

	t.Run("corrupt price is rejected", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("ListBasketLinesForUpdate", mock.Anything, mock.Anything, int64(100200)).Return([]sqlc.ListBasketLinesForUpdateRow{
			{ProductID: 1, Name: "Product A", Price: pgtype.Numeric{NaN: true, Valid: true}, Quantity: 2},
		}, nil)

		_, err := NewBasketRepository(mockQueries).GetForUpdate(context.Background(), nil, 100200)

		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestBasketRepository_Get_Empty(t *testing.T) {
	mockQueries := new(MockBasketQueries)
	mockQueries.On("ListBasketLines", mock.Anything, mock.Anything, int64(100200)).Return([]sqlc.ListBasketLinesRow{}, nil)

	b, err := NewBasketRepository(mockQueries).Get(context.Background(), nil, 100200)

	require.NoError(t, err)
	assert.True(t, b.IsEmpty())
}

func TestBasketRepository_Clear(t *testing.T) {
	mockQueries := new(MockBasketQueries)
	mockQueries.On("ClearBasket", mock.Anything, mock.Anything, int64(100200)).Return(int64(2), nil)

	n, err := NewBasketRepository(mockQueries).Clear(context.Background(), nil, 100200)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestBasketRepository_RemoveLines(t *testing.T) {
	t.Run("only the given products are deleted", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("RemoveBasketLines", mock.Anything, mock.Anything, sqlc.RemoveBasketLinesParams{
			UserID:     100200,
			ProductIds: []int64{1, 3},
		}).Return(int64(2), nil)

		n, err := NewBasketRepository(mockQueries).RemoveLines(context.Background(), nil, 100200, []int64{1, 3})

		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		mockQueries.AssertExpectations(t)
	})

	t.Run("database failure", func(t *testing.T) {
		mockQueries := new(MockBasketQueries)
		mockQueries.On("RemoveBasketLines", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := NewBasketRepository(mockQueries).RemoveLines(context.Background(), nil, 100200, []int64{1})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
