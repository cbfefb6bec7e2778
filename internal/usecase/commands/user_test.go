//go:build unit

package commands_test

import (
	"testing"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserCommands(t *testing.T) {
	t.Run("登録はプロフィールをupsertする", func(t *testing.T) {
		d := newDeps(t)
		d.users.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, u *user.User) (*user.User, error) { return u, nil })

		u, err := commands.NewUserUseCase(d.uow).Register(t.Context(), commands.RegisterUserRequest{
			ID: customerID, FirstName: "Alisher", LastName: "Karimov",
		})
		require.NoError(t, err)
		assert.Equal(t, "Alisher Karimov", u.DisplayName().String())
	})

	t.Run("不正なIDはDomainValidation", func(t *testing.T) {
		d := newDeps(t)
		_, err := commands.NewUserUseCase(d.uow).Register(t.Context(), commands.RegisterUserRequest{ID: 0})
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("電話番号は正規化して保存", func(t *testing.T) {
		d := newDeps(t)
		phone, _ := user.NewPhone("+998901234567")
		d.users.EXPECT().CapturePhone(gomock.Any(), gomock.Any(), customerID, phone).Return(true, nil)

		captured, err := commands.NewUserUseCase(d.uow).CapturePhone(t.Context(), customerID, "998 90 123-45-67")
		require.NoError(t, err)
		assert.True(t, captured)
	})

	t.Run("既に電話番号があれば上書きしない", func(t *testing.T) {
		d := newDeps(t)
		d.users.EXPECT().CapturePhone(gomock.Any(), gomock.Any(), customerID, gomock.Any()).Return(false, nil)

		captured, err := commands.NewUserUseCase(d.uow).CapturePhone(t.Context(), customerID, "+998901234567")
		require.NoError(t, err)
		assert.False(t, captured)
	})

	t.Run("不正な電話番号はDomainValidation", func(t *testing.T) {
		d := newDeps(t)
		_, err := commands.NewUserUseCase(d.uow).CapturePhone(t.Context(), customerID, "call me")
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
