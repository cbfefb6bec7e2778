//go:build unit || e2e

package builder

import (
	"time"

	"massfit-bot/internal/domain/user"
	sqlc "massfit-bot/internal/infra/sqlc/generated"
	"massfit-bot/internal/pkg/ptr"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID        int64
	FirstName string
	LastName  string
	Username  *string
	Phone     *string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        100200,
		FirstName: "Alisher",
		LastName:  "Karimov",
		Username:  ptr.Of("alisher"),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	usr, err := user.NewUser(u.ID, user.NewDisplayName(u.FirstName, u.LastName), u.Username)
	if err != nil {
		return nil, err
	}
	if u.Phone != nil {
		phone, err := user.NewPhone(*u.Phone)
		if err != nil {
			return nil, err
		}
		usr.CapturePhone(phone)
	}
	return usr, nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	var username, phone pgtype.Text
	if u.Username != nil {
		username = pgtype.Text{String: *u.Username, Valid: true}
	}
	if u.Phone != nil {
		phone = pgtype.Text{String: *u.Phone, Valid: true}
	}

	return sqlc.Users{
		ID:          u.ID,
		DisplayName: user.NewDisplayName(u.FirstName, u.LastName).String(),
		Username:    username,
		Phone:       phone,
		CreatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: now, Valid: true},
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(first, last string) *UserBuilder {
	u.FirstName = first
	u.LastName = last
	return u
}

func (u *UserBuilder) WithoutUsername() *UserBuilder {
	u.Username = nil
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}
