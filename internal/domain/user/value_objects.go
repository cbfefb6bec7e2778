package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidPhone  = errors.New("invalid phone number")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

type Phone struct {
	value string
}

// NewPhone normalizes to E.164-like "+digits"; Telegram sometimes omits the plus.
func NewPhone(s string) (Phone, error) {
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(s))
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	if !strings.HasPrefix(s, "+") {
		s = "+" + s
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type DisplayName struct {
	value string
}

func NewDisplayName(first, last string) DisplayName {
	return DisplayName{value: strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))}
}

func (d DisplayName) String() string {
	return d.value
}

// OrFallback is used when the platform profile carries no name at all.
func (d DisplayName) OrFallback(fallback string) string {
	if d.value == "" {
		return fallback
	}
	return d.value
}
