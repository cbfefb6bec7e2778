// Package callback encodes and decodes the opaque action ids carried by inline
// keyboard buttons. Payloads only ever identify entities; quantities and other
// mutable state are resolved from storage by the handler.
package callback

import (
	"errors"
	"strconv"
	"strings"
)

var ErrMalformed = errors.New("malformed callback data")

// Telegram rejects callback_data longer than 64 bytes.
const maxLen = 64

type Kind string

const (
	KindBasketInc      Kind = "bk:inc"
	KindBasketDec      Kind = "bk:dec"
	KindBasketAdd      Kind = "bk:add"
	KindBasketShow     Kind = "bk:show"
	KindBasketNoop     Kind = "bk:nop"
	KindCheckoutStart  Kind = "co:start"
	KindCheckoutDeliv  Kind = "co:delivery"
	KindCheckoutPickup Kind = "co:pickup"
	KindCheckoutBranch Kind = "co:branch"
	KindCheckoutYes    Kind = "co:yes"
	KindCheckoutNo     Kind = "co:no"
	KindOrderStatus    Kind = "st"
	KindProduct        Kind = "pr"
	KindCategory       Kind = "ct"
)

type Action struct {
	Kind Kind
	ID   int64
	Arg  string
}

func BasketInc(productID int64) string     { return withID(KindBasketInc, productID) }
func BasketDec(productID int64) string     { return withID(KindBasketDec, productID) }
func BasketAdd(productID int64) string     { return withID(KindBasketAdd, productID) }
func BasketShow() string                   { return string(KindBasketShow) }
func BasketNoop() string                   { return string(KindBasketNoop) }
func CheckoutStart() string                { return string(KindCheckoutStart) }
func CheckoutDelivery() string             { return string(KindCheckoutDeliv) }
func CheckoutPickup() string               { return string(KindCheckoutPickup) }
func CheckoutBranch(branchID int64) string { return withID(KindCheckoutBranch, branchID) }
func CheckoutYes() string                  { return string(KindCheckoutYes) }
func CheckoutNo() string                   { return string(KindCheckoutNo) }
func Product(productID int64) string       { return withID(KindProduct, productID) }
func Category(category string) string      { return string(KindCategory) + ":" + category }

func OrderStatus(orderID int64, status string) string {
	return withID(KindOrderStatus, orderID) + ":" + status
}

func withID(k Kind, id int64) string {
	return string(k) + ":" + strconv.FormatInt(id, 10)
}

var bare = map[Kind]struct{}{
	KindBasketShow:     {},
	KindBasketNoop:     {},
	KindCheckoutStart:  {},
	KindCheckoutDeliv:  {},
	KindCheckoutPickup: {},
	KindCheckoutYes:    {},
	KindCheckoutNo:     {},
}

var withIDKinds = map[Kind]struct{}{
	KindBasketInc:      {},
	KindBasketDec:      {},
	KindBasketAdd:      {},
	KindCheckoutBranch: {},
	KindProduct:        {},
}

func Parse(data string) (Action, error) {
	if data == "" || len(data) > maxLen {
		return Action{}, ErrMalformed
	}
	if _, ok := bare[Kind(data)]; ok {
		return Action{Kind: Kind(data)}, nil
	}

	parts := strings.Split(data, ":")
	switch {
	case len(parts) == 2 && parts[0] == string(KindCategory):
		if parts[1] == "" {
			return Action{}, ErrMalformed
		}
		return Action{Kind: KindCategory, Arg: parts[1]}, nil

	case len(parts) == 3 && parts[0] == string(KindOrderStatus):
		id, err := parseID(parts[1])
		if err != nil || parts[2] == "" {
			return Action{}, ErrMalformed
		}
		return Action{Kind: KindOrderStatus, ID: id, Arg: parts[2]}, nil

	case len(parts) == 2 && parts[0] == string(KindProduct):
		id, err := parseID(parts[1])
		if err != nil {
			return Action{}, ErrMalformed
		}
		return Action{Kind: KindProduct, ID: id}, nil

	case len(parts) == 3:
		k := Kind(parts[0] + ":" + parts[1])
		if _, ok := withIDKinds[k]; !ok {
			return Action{}, ErrMalformed
		}
		id, err := parseID(parts[2])
		if err != nil {
			return Action{}, ErrMalformed
		}
		return Action{Kind: k, ID: id}, nil
	}
	return Action{}, ErrMalformed
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrMalformed
	}
	return id, nil
}
