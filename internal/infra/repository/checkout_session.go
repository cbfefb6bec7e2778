package repository

import (
	"context"

	"massfit-bot/internal/domain/checkout"
	"massfit-bot/internal/infra"
	"massfit-bot/internal/infra/repository/converter"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
)

type CheckoutSessionQueries interface {
	GetCheckoutSessionForUpdate(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.CheckoutSessions, error)
	UpsertCheckoutSession(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCheckoutSessionParams) error
	DeleteCheckoutSession(ctx context.Context, db sqlc.DBTX, userID int64) (int64, error)
}

type CheckoutSessionRepository struct {
	queries CheckoutSessionQueries
}

func NewCheckoutSessionRepository(queries CheckoutSessionQueries) *CheckoutSessionRepository {
	return &CheckoutSessionRepository{queries: queries}
}

func (r *CheckoutSessionRepository) Load(ctx context.Context, tx sqlc.DBTX, userID int64) (*checkout.Session, error) {
	row, err := r.queries.GetCheckoutSessionForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return checkout.NewSession(userID), nil
		}
		return nil, infra.WrapRepoErr("failed to lock checkout session", err)
	}
	return converter.SessionFromRow(row), nil
}

func (r *CheckoutSessionRepository) Save(ctx context.Context, tx sqlc.DBTX, s *checkout.Session) error {
	if err := r.queries.UpsertCheckoutSession(ctx, tx, converter.SessionToUpsertParams(s)); err != nil {
		return infra.WrapRepoErr("failed to save checkout session", err)
	}
	return nil
}

func (r *CheckoutSessionRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID int64) (bool, error) {
	n, err := r.queries.DeleteCheckoutSession(ctx, tx, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete checkout session", err)
	}
	return n > 0, nil
}
