package repository

import (
	"context"

	"massfit-bot/internal/domain/user"
	"massfit-bot/internal/infra"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/pgconv"
)

type UserQueries interface {
	UpsertUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertUserParams) (sqlc.Users, error)
	GetUserByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Users, error)
	SetUserPhoneIfEmpty(ctx context.Context, db sqlc.DBTX, arg sqlc.SetUserPhoneIfEmptyParams) (int64, error)
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Upsert(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.UpsertUser(ctx, tx, sqlc.UpsertUserParams{
		ID:          u.ID(),
		DisplayName: u.DisplayName().String(),
		Username:    pgconv.StringPtrToPgtype(u.Username()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert user", err)
	}
	return userFromRow(row), nil
}

// CapturePhone reports false when a phone was already on file.
func (r *UserRepository) CapturePhone(ctx context.Context, tx sqlc.DBTX, userID int64, phone user.Phone) (bool, error) {
	n, err := r.queries.SetUserPhoneIfEmpty(ctx, tx, sqlc.SetUserPhoneIfEmptyParams{
		ID:    userID,
		Phone: pgconv.StringToPgtype(phone.Value()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to set user phone", err)
	}
	return n > 0, nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, userID int64) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return userFromRow(row), nil
}

func userFromRow(row sqlc.Users) *user.User {
	var phone *user.Phone
	if row.Phone.Valid {
		if p, err := user.NewPhone(row.Phone.String); err == nil {
			phone = &p
		}
	}
	return user.ReconstructUser(
		row.ID,
		user.NewDisplayName(row.DisplayName, ""),
		pgconv.StringPtrFromPgtype(row.Username),
		phone,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
