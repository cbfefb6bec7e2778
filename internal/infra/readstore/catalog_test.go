//go:build unit

package readstore

import (
	"context"
	"testing"

	"massfit-bot/internal/domain/catalog"
	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogViewQueries struct {
	mock.Mock
}

func (m *MockCatalogViewQueries) GetProductByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Products), args.Error(1)
}

func (m *MockCatalogViewQueries) ListProductsByCategory(ctx context.Context, db sqlc.DBTX, category string) ([]sqlc.Products, error) {
	args := m.Called(ctx, db, category)
	return args.Get(0).([]sqlc.Products), args.Error(1)
}

func (m *MockCatalogViewQueries) GetBranchByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Branches), args.Error(1)
}

func (m *MockCatalogViewQueries) GetBranchByIDForShare(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Branches, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Branches), args.Error(1)
}

func (m *MockCatalogViewQueries) ListBranches(ctx context.Context, db sqlc.DBTX) ([]sqlc.Branches, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Branches), args.Error(1)
}

func TestCatalogReadStore_FindProductByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		pb := builder.NewProductBuilder().WithImage("AgACphoto")
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetProductByID", mock.Anything, mock.Anything, int64(1)).Return(pb.BuildInfra(), nil)

		got, err := NewCatalogReadStore(mockQueries, nil).FindProductByID(context.Background(), 1)

		require.NoError(t, err)
		if diff := cmp.Diff(pb.BuildView(), got, decimalEqual); diff != "" {
			t.Errorf("product view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetProductByID", mock.Anything, mock.Anything, int64(404)).Return(sqlc.Products{}, pgx.ErrNoRows)

		_, err := NewCatalogReadStore(mockQueries, nil).FindProductByID(context.Background(), 404)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestCatalogReadStore_ListProductsByCategory(t *testing.T) {
	rows := []sqlc.Products{
		builder.NewProductBuilder().WithID(7).WithName("Mass Gainer").WithCategory(catalog.CategoryWeightGain).BuildInfra(),
		builder.NewProductBuilder().WithID(8).WithName("Creatine").WithCategory(catalog.CategoryWeightGain).BuildInfra(),
	}
	mockQueries := new(MockCatalogViewQueries)
	mockQueries.On("ListProductsByCategory", mock.Anything, mock.Anything, "weight_gain").Return(rows, nil)

	got, err := NewCatalogReadStore(mockQueries, nil).ListProductsByCategory(context.Background(), catalog.CategoryWeightGain)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mass Gainer", got[0].Name)
	assert.Equal(t, "weight_gain", got[1].Category)
}

func TestCatalogReadStore_Branches(t *testing.T) {
	t.Run("lock keeps the branch for the transaction", func(t *testing.T) {
		bb := builder.NewBranchBuilder()
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetBranchByIDForShare", mock.Anything, mock.Anything, int64(3)).Return(bb.BuildInfra(), nil)

		got, err := NewCatalogReadStore(mockQueries, nil).LockBranchByID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, bb.BuildView(), got)
		mockQueries.AssertNotCalled(t, "GetBranchByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted branch", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("GetBranchByIDForShare", mock.Anything, mock.Anything, int64(3)).Return(sqlc.Branches{}, pgx.ErrNoRows)

		_, err := NewCatalogReadStore(mockQueries, nil).LockBranchByID(context.Background(), 3)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list", func(t *testing.T) {
		mockQueries := new(MockCatalogViewQueries)
		mockQueries.On("ListBranches", mock.Anything, mock.Anything).Return([]sqlc.Branches{
			builder.NewBranchBuilder().WithID(1).WithName("Yunusobod").BuildInfra(),
			builder.NewBranchBuilder().BuildInfra(),
		}, nil)

		got, err := NewCatalogReadStore(mockQueries, nil).ListBranches(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Yunusobod", got[0].Name)
		assert.Nil(t, got[1].ImageRef)
	})
}
