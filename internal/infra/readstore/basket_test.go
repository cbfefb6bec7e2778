//go:build unit

package readstore

import (
	"context"
	"testing"

	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBasketViewQueries struct {
	mock.Mock
}

func (m *MockBasketViewQueries) ListBasketLines(ctx context.Context, db sqlc.DBTX, userID int64) ([]sqlc.ListBasketLinesRow, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).([]sqlc.ListBasketLinesRow), args.Error(1)
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBasketReadStore_FindByUser(t *testing.T) {
	tests := []struct {
		name      string
		rows      []sqlc.ListBasketLinesRow
		mockError error
		wantTotal string
		wantLines int
		wantError bool
	}{
		{
			name: "subtotals follow current prices",
			rows: []sqlc.ListBasketLinesRow{
				{ProductID: 1, Name: "Product A", Price: pgconv.NumericFromDecimal(price("10.00")), Quantity: 2},
				{ProductID: 2, Name: "Product B", Price: pgconv.NumericFromDecimal(price("0.10")), Quantity: 3},
			},
			wantTotal: "20.30",
			wantLines: 2,
		},
		{
			name:      "empty basket",
			rows:      []sqlc.ListBasketLinesRow{},
			wantTotal: "0",
			wantLines: 0,
		},
		{
			name:      "database error",
			rows:      []sqlc.ListBasketLinesRow(nil),
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBasketViewQueries)
			mockQueries.On("ListBasketLines", mock.Anything, mock.Anything, int64(100200)).Return(tt.rows, tt.mockError)

			got, err := NewBasketReadStore(mockQueries, nil).FindByUser(context.Background(), 100200)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got.Lines, tt.wantLines)
			assert.True(t, price(tt.wantTotal).Equal(got.Total), "total %s", got.Total)
			assert.Equal(t, tt.wantLines == 0, got.IsEmpty())
		})
	}
}
