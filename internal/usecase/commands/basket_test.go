//go:build unit

package commands_test

import (
	"testing"

	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBasketCommands(t *testing.T) {
	const userID, productID int64 = 100200, 1

	t.Run("加算で数量が返る", func(t *testing.T) {
		d := newDeps(t)
		d.reads.EXPECT().ProductByID(gomock.Any(), productID).Return(builder.NewProductBuilder().BuildSnapshot(), nil)
		d.baskets.EXPECT().Increment(gomock.Any(), gomock.Any(), userID, productID).Return(3, nil)

		qty, err := commands.NewBasketUseCase(d.uow).Increment(t.Context(), userID, productID)
		require.NoError(t, err)
		assert.Equal(t, 3, qty)
	})

	t.Run("存在しない商品の加算はProductNotFound", func(t *testing.T) {
		d := newDeps(t)
		d.reads.EXPECT().ProductByID(gomock.Any(), int64(999)).Return(nil, notFound("product"))

		_, err := commands.NewBasketUseCase(d.uow).Increment(t.Context(), userID, 999)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrProductNotFound))
	})

	t.Run("同時削除による外部キー違反もProductNotFound", func(t *testing.T) {
		d := newDeps(t)
		d.reads.EXPECT().ProductByID(gomock.Any(), productID).Return(builder.NewProductBuilder().BuildSnapshot(), nil)
		d.baskets.EXPECT().Increment(gomock.Any(), gomock.Any(), userID, productID).
			Return(0, infra.WrapRepoErr("increment", nil, infra.KindForeignKeyViolated))

		_, err := commands.NewBasketUseCase(d.uow).Increment(t.Context(), userID, productID)
		assert.True(t, errs.Is(err, errs.ErrProductNotFound))
	})

	t.Run("減算で残数が返る", func(t *testing.T) {
		d := newDeps(t)
		d.baskets.EXPECT().Decrement(gomock.Any(), gomock.Any(), userID, productID).Return(1, nil)

		qty, err := commands.NewBasketUseCase(d.uow).Decrement(t.Context(), userID, productID)
		require.NoError(t, err)
		assert.Equal(t, 1, qty)
	})

	t.Run("最後の1個の減算は0", func(t *testing.T) {
		d := newDeps(t)
		d.baskets.EXPECT().Decrement(gomock.Any(), gomock.Any(), userID, productID).Return(0, nil)

		qty, err := commands.NewBasketUseCase(d.uow).Decrement(t.Context(), userID, productID)
		require.NoError(t, err)
		assert.Zero(t, qty)
	})

	t.Run("DB障害はDatabaseOperationFailed", func(t *testing.T) {
		d := newDeps(t)
		d.baskets.EXPECT().Decrement(gomock.Any(), gomock.Any(), userID, productID).Return(0, dbFailure("decrement"))

		_, err := commands.NewBasketUseCase(d.uow).Decrement(t.Context(), userID, productID)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})

	t.Run("クリア", func(t *testing.T) {
		d := newDeps(t)
		d.baskets.EXPECT().Clear(gomock.Any(), gomock.Any(), userID).Return(int64(2), nil)

		require.NoError(t, commands.NewBasketUseCase(d.uow).Clear(t.Context(), userID))
	})
}
