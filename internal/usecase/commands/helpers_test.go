//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"massfit-bot/internal/infra"
	"massfit-bot/internal/pkg/clock"
	"massfit-bot/internal/pkg/errs"
	"massfit-bot/internal/usecase/shared"
	commandsmock "massfit-bot/tests/mock/commands"
	sharedmock "massfit-bot/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type deps struct {
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	users    *sharedmock.MockUserRepository
	baskets  *sharedmock.MockBasketRepository
	orders   *sharedmock.MockOrderRepository
	sessions *sharedmock.MockCheckoutSessionRepository
	notifier *commandsmock.MockOrderNotifier
	clock    *clock.MockClock
}

// newDeps wires a unit of work whose Within runs the callback against a mock
// transaction exposing the mock repositories.
func newDeps(t *testing.T) *deps {
	ctrl := gomock.NewController(t)
	d := &deps{
		ctrl:     ctrl,
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		users:    sharedmock.NewMockUserRepository(ctrl),
		baskets:  sharedmock.NewMockBasketRepository(ctrl),
		orders:   sharedmock.NewMockOrderRepository(ctrl),
		sessions: sharedmock.NewMockCheckoutSessionRepository(ctrl),
		notifier: commandsmock.NewMockOrderNotifier(ctrl),
		clock:    clock.NewMockClock(fixedNow),
	}

	d.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, d.tx)
		}).AnyTimes()
	d.tx.EXPECT().DB().Return(nil).AnyTimes()
	d.tx.EXPECT().Reads().Return(d.reads).AnyTimes()
	d.tx.EXPECT().Users().Return(d.users).AnyTimes()
	d.tx.EXPECT().Baskets().Return(d.baskets).AnyTimes()
	d.tx.EXPECT().Orders().Return(d.orders).AnyTimes()
	d.tx.EXPECT().Sessions().Return(d.sessions).AnyTimes()
	return d
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func dbFailure(msg string) error {
	return infra.WrapRepoErr(msg, errs.New("connection reset"), infra.KindDBFailure)
}
