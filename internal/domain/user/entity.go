package user

import (
	"time"
)

// User is the customer record keyed by the messaging platform id.
type User struct {
	id          int64
	displayName DisplayName
	username    *string
	phone       *Phone
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(id int64, displayName DisplayName, username *string) (*User, error) {
	if id == 0 {
		return nil, ErrInvalidUserID
	}
	return &User{
		id:          id,
		displayName: displayName,
		username:    username,
	}, nil
}

func ReconstructUser(id int64, displayName DisplayName, username *string, phone *Phone, createdAt, updatedAt time.Time) *User {
	return &User{
		id:          id,
		displayName: displayName,
		username:    username,
		phone:       phone,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// CapturePhone stores the phone once; later contacts do not overwrite it.
func (u *User) CapturePhone(p Phone) bool {
	if u.phone != nil {
		return false
	}
	u.phone = &p
	return true
}

func (u *User) ID() int64                { return u.id }
func (u *User) DisplayName() DisplayName { return u.displayName }
func (u *User) Username() *string        { return u.username }
func (u *User) Phone() *Phone            { return u.phone }
func (u *User) HasPhone() bool           { return u.phone != nil }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }
