//go:build unit

package repository

import (
	"context"
	"testing"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) SetUserPhoneIfEmpty(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserPhoneIfEmptyParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_Upsert(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	wantParams := sqlc.UpsertUserParams{
		ID:          100200,
		DisplayName: "Alisher Karimov",
		Username:    pgtype.Text{String: "alisher", Valid: true},
	}

	t.Run("success", func(t *testing.T) {
		row := builder.NewUserBuilder().WithPhone("+998901234567").BuildInfra()
		mockQueries := new(MockUserQueries)
		mockQueries.On("UpsertUser", mock.Anything, mock.Anything, wantParams).Return(row, nil)

		got, err := NewUserRepository(mockQueries).Upsert(context.Background(), nil, u)

		require.NoError(t, err)
		assert.Equal(t, int64(100200), got.ID())
		assert.True(t, got.HasPhone())
		mockQueries.AssertExpectations(t)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("UpsertUser", mock.Anything, mock.Anything, wantParams).Return(sqlc.Users{}, assert.AnError)

		_, err := NewUserRepository(mockQueries).Upsert(context.Background(), nil, u)

		assert.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestUserRepository_CapturePhone(t *testing.T) {
	phone, err := user.NewPhone("+998901234567")
	require.NoError(t, err)
	params := sqlc.SetUserPhoneIfEmptyParams{ID: 100200, Phone: pgtype.Text{String: "+998901234567", Valid: true}}

	tests := []struct {
		name      string
		affected  int64
		mockError error
		want      bool
		wantError bool
	}{
		{name: "first phone is stored", affected: 1, want: true},
		{name: "existing phone is kept", affected: 0, want: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			mockQueries.On("SetUserPhoneIfEmpty", mock.Anything, mock.Anything, params).Return(tt.affected, tt.mockError)

			got, err := NewUserRepository(mockQueries).CapturePhone(context.Background(), nil, 100200, phone)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockUserQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, int64(7)).Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(mockQueries).FindByID(context.Background(), nil, 7)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("unparseable stored phone is dropped", func(t *testing.T) {
		row := builder.NewUserBuilder().WithPhone("n/a").BuildInfra()
		mockQueries := new(MockUserQueries)
		mockQueries.On("GetUserByID", mock.Anything, mock.Anything, int64(100200)).Return(row, nil)

		got, err := NewUserRepository(mockQueries).FindByID(context.Background(), nil, 100200)

		require.NoError(t, err)
		assert.False(t, got.HasPhone())
		assert.Equal(t, "alisher", *got.Username())
	})
}
