//go:build unit

package commands_test

import (
	"testing"

	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"
	"massfit-bot/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func confirmedPickup(branchID int64) *checkout.Session {
	return checkout.ReconstructSession(customerID, checkout.StateAwaitingConfirmation,
		fulfillmentPtr(order.FulfillmentPickup), nil, &branchID, fixedNow)
}

func confirmedDelivery() *checkout.Session {
	return checkout.ReconstructSession(customerID, checkout.StateAwaitingConfirmation,
		fulfillmentPtr(order.FulfillmentDelivery), &order.Location{Latitude: 41.31, Longitude: 69.24}, nil, fixedNow)
}

func TestOrderFinalizer(t *testing.T) {
	branch := builder.NewBranchBuilder()

	t.Run("受取注文の確定", func(t *testing.T) {
		d := newDeps(t)
		d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(confirmedPickup(branch.ID), nil)
		d.baskets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewBasketBuilder().BuildDomain(), nil)
		d.reads.EXPECT().LockBranch(gomock.Any(), branch.ID).Return(branch.BuildSnapshot(), nil)

		var created *order.Order
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, o *order.Order) (int64, error) {
				created = o
				return 42, nil
			})
		d.baskets.EXPECT().RemoveLines(gomock.Any(), gomock.Any(), customerID, []int64{1}).Return(int64(1), nil)
		d.sessions.EXPECT().Delete(gomock.Any(), gomock.Any(), customerID).Return(true, nil)
		d.notifier.EXPECT().AnnounceNewOrder(gomock.Any(), int64(42))

		res, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		require.NoError(t, err)

		assert.Equal(t, int64(42), res.OrderID)
		assert.True(t, decimal.RequireFromString("20.00").Equal(res.Total))
		assert.Equal(t, order.FulfillmentPickup, res.Fulfillment.Type())
		assert.Equal(t, branch.Name, res.Branch.Name)

		require.NotNil(t, created)
		assert.Equal(t, order.StatusPending, created.Status())
		assert.Equal(t, customerID, created.UserID())
		require.Len(t, created.Items(), 1)
		assert.Equal(t, 2, created.Items()[0].Quantity)
		assert.Equal(t, fixedNow, created.CreatedAt())
	})

	t.Run("配送注文は支店を読まない", func(t *testing.T) {
		d := newDeps(t)
		d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(confirmedDelivery(), nil)
		d.baskets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), customerID).
			Return(builder.NewBasketBuilder().WithLine(2, "Product B", "5.50", 3).BuildDomain(), nil)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(7), nil)
		d.baskets.EXPECT().RemoveLines(gomock.Any(), gomock.Any(), customerID, []int64{1, 2}).Return(int64(2), nil)
		d.sessions.EXPECT().Delete(gomock.Any(), gomock.Any(), customerID).Return(true, nil)
		d.notifier.EXPECT().AnnounceNewOrder(gomock.Any(), int64(7))

		res, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		require.NoError(t, err)
		assert.Equal(t, "36.50", res.Total.StringFixed(2))
		assert.Nil(t, res.Branch)
		assert.True(t, res.Fulfillment.IsDelivery())
	})

	t.Run("空のバスケットはEmptyBasketで通知しない", func(t *testing.T) {
		d := newDeps(t)
		d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(confirmedDelivery(), nil)
		d.baskets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewBasketBuilder().Empty().BuildDomain(), nil)

		_, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		assert.True(t, errs.Is(err, errs.ErrEmptyBasket))
	})

	t.Run("確認待ち以外はInvalidCheckoutStep", func(t *testing.T) {
		d := newDeps(t)
		d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(checkout.NewSession(customerID), nil)

		_, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		assert.True(t, errs.Is(err, errs.ErrInvalidCheckoutStep))
	})

	t.Run("支店が消えていたら支店選択に戻す", func(t *testing.T) {
		d := newDeps(t)
		first := confirmedPickup(branch.ID)
		retry := confirmedPickup(branch.ID)
		gomock.InOrder(
			d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(first, nil),
			d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(retry, nil),
		)
		d.baskets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewBasketBuilder().BuildDomain(), nil)
		d.reads.EXPECT().LockBranch(gomock.Any(), branch.ID).Return(nil, notFound("branch"))
		d.sessions.EXPECT().Save(gomock.Any(), gomock.Any(), retry).Return(nil)

		_, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		assert.True(t, errs.Is(err, errs.ErrBranchNotFound))
		assert.Equal(t, checkout.StateAwaitingBranchSelection, retry.State())
		assert.Nil(t, retry.BranchID())
	})

	t.Run("注文作成のDB障害はDatabaseOperationFailed", func(t *testing.T) {
		d := newDeps(t)
		d.sessions.EXPECT().Load(gomock.Any(), gomock.Any(), customerID).Return(confirmedDelivery(), nil)
		d.baskets.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), customerID).Return(builder.NewBasketBuilder().BuildDomain(), nil)
		d.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), dbFailure("create order"))

		_, err := commands.NewOrderFinalizer(d.uow, d.notifier, d.clock).Finalize(t.Context(), customerID)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
