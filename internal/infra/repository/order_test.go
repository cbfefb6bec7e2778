//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"massfit-bot/internal/domain/order"
	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/usecase/shared"
	"massfit-bot/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderWriteQueries struct {
	mock.Mock
}

func (m *MockOrderWriteQueries) CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.CreateOrderRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.CreateOrderRow), args.Error(1)
}

func (m *MockOrderWriteQueries) CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockOrderWriteQueries) GetOrderForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Orders), args.Error(1)
}

func (m *MockOrderWriteQueries) ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error) {
	args := m.Called(ctx, db, orderID)
	return args.Get(0).([]sqlc.OrderItems), args.Error(1)
}

func (m *MockOrderWriteQueries) UpdateOrderStatusFromPending(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusFromPendingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderWriteQueries) SetOrderStaffMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.SetOrderStaffMessageParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, err := order.NewPickup(3)
	require.NoError(t, err)
	b := builder.NewBasketBuilder().WithLine(2, "Product B", "5.50", 1).BuildDomain()
	o, err := order.NewFromBasket(b, pickup, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestOrderRepository_Create(t *testing.T) {
	t.Run("header and every item are written", func(t *testing.T) {
		o := newPendingOrder(t)
		mockQueries := new(MockOrderWriteQueries)
		mockQueries.On("CreateOrder", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateOrderParams) bool {
			return p.UserID == 100200 &&
				p.FulfillmentType == "pickup" &&
				p.BranchID == pgtype.Int8{Int64: 3, Valid: true} &&
				!p.Latitude.Valid &&
				p.Status == "pending"
		})).Return(sqlc.CreateOrderRow{ID: 77}, nil)
		mockQueries.On("CreateOrderItem", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateOrderItemParams) bool {
			return p.OrderID == 77
		})).Return(nil).Twice()

		id, err := NewOrderRepository(mockQueries).Create(context.Background(), nil, o)

		require.NoError(t, err)
		assert.Equal(t, int64(77), id)
		assert.Equal(t, int64(77), o.ID())
		mockQueries.AssertExpectations(t)
	})

	t.Run("item failure aborts", func(t *testing.T) {
		o := newPendingOrder(t)
		mockQueries := new(MockOrderWriteQueries)
		mockQueries.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.CreateOrderRow{ID: 77}, nil)
		mockQueries.On("CreateOrderItem", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

		_, err := NewOrderRepository(mockQueries).Create(context.Background(), nil, o)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, o.ID())
		mockQueries.AssertNumberOfCalls(t, "CreateOrderItem", 1)
	})
}

func TestOrderRepository_FindForUpdate(t *testing.T) {
	t.Run("rebuilds the aggregate", func(t *testing.T) {
		ob := builder.NewOrderBuilder().AsDelivery(41.31, 69.24).WithStaffMessage(-100500, 9)
		mockQueries := new(MockOrderWriteQueries)
		mockQueries.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(42)).Return(ob.BuildInfra(), nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, int64(42)).Return(ob.BuildInfraItems(), nil)

		o, err := NewOrderRepository(mockQueries).FindForUpdate(context.Background(), nil, 42)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.True(t, o.Fulfillment().IsDelivery())
		assert.Equal(t, 41.31, o.Fulfillment().Location().Latitude)
		assert.True(t, decimal.RequireFromString("20.00").Equal(o.Total()))
		require.NotNil(t, o.StaffMessageID())
		assert.Equal(t, int64(9), *o.StaffMessageID())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockOrderWriteQueries)
		mockQueries.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(404)).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := NewOrderRepository(mockQueries).FindForUpdate(context.Background(), nil, 404)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "ListOrderItems", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("pickup row without branch is corrupt", func(t *testing.T) {
		row := builder.NewOrderBuilder().BuildInfra()
		row.BranchID = pgtype.Int8{}
		mockQueries := new(MockOrderWriteQueries)
		mockQueries.On("GetOrderForUpdate", mock.Anything, mock.Anything, int64(42)).Return(row, nil)
		mockQueries.On("ListOrderItems", mock.Anything, mock.Anything, int64(42)).Return([]sqlc.OrderItems{}, nil)

		_, err := NewOrderRepository(mockQueries).FindForUpdate(context.Background(), nil, 42)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	o := builder.NewOrderBuilder().WithStatus(order.StatusDelivered).BuildDomain()
	params := sqlc.UpdateOrderStatusFromPendingParams{ID: 42, Status: "delivered"}

	tests := []struct {
		name     string
		affected int64
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "already settled", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", err: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockOrderWriteQueries)
			mockQueries.On("UpdateOrderStatusFromPending", mock.Anything, mock.Anything, params).Return(tt.affected, tt.err)

			err := NewOrderRepository(mockQueries).UpdateStatus(context.Background(), nil, o)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestOrderRepository_SetStaffMessage(t *testing.T) {
	mockQueries := new(MockOrderWriteQueries)
	mockQueries.On("SetOrderStaffMessage", mock.Anything, mock.Anything, sqlc.SetOrderStaffMessageParams{
		ID:             42,
		StaffChatID:    pgtype.Int8{Int64: -100500, Valid: true},
		StaffMessageID: pgtype.Int8{Int64: 9, Valid: true},
	}).Return(int64(1), nil)

	err := NewOrderRepository(mockQueries).SetStaffMessage(context.Background(), nil, 42, shared.MessageRef{ChatID: -100500, MessageID: 9})

	require.NoError(t, err)
	mockQueries.AssertExpectations(t)
}
