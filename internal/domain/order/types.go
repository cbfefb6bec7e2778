package order

import (
	"errors"
	"math"
)

var (
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrStatusTransition   = errors.New("order status cannot change from a terminal state")
	ErrInvalidFulfillment = errors.New("invalid fulfillment")
	ErrInvalidLocation    = errors.New("coordinates out of range")
	ErrEmptyBasket        = errors.New("cannot create order from empty basket")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseTargetStatus accepts only the states a staff action may move an order into.
func ParseTargetStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsTerminal() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "delivery"
	FulfillmentPickup   FulfillmentType = "pickup"
)

func (t FulfillmentType) String() string {
	return string(t)
}

func (t FulfillmentType) IsValid() bool {
	return t == FulfillmentDelivery || t == FulfillmentPickup
}

type Location struct {
	Latitude  float64
	Longitude float64
}

func NewLocation(lat, lon float64) (Location, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Location{}, ErrInvalidLocation
	}
	return Location{Latitude: lat, Longitude: lon}, nil
}

// Fulfillment is a complete intent: delivery carries coordinates, pickup a branch.
type Fulfillment struct {
	typ      FulfillmentType
	location *Location
	branchID *int64
}

func NewDelivery(loc Location) Fulfillment {
	return Fulfillment{typ: FulfillmentDelivery, location: &loc}
}

func NewPickup(branchID int64) (Fulfillment, error) {
	if branchID <= 0 {
		return Fulfillment{}, ErrInvalidFulfillment
	}
	return Fulfillment{typ: FulfillmentPickup, branchID: &branchID}, nil
}

func (f Fulfillment) Type() FulfillmentType { return f.typ }
func (f Fulfillment) Location() *Location   { return f.location }
func (f Fulfillment) BranchID() *int64      { return f.branchID }
func (f Fulfillment) IsDelivery() bool      { return f.typ == FulfillmentDelivery }
