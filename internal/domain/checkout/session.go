package checkout

import (
	"errors"
	"time"

	"massfit-bot/internal/domain/order"
)

var (
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrIncompleteIntent  = errors.New("fulfillment intent is incomplete")
)

type State string

const (
	StateIdle                      State = "idle"
	StateAwaitingFulfillmentChoice State = "awaiting_fulfillment_choice"
	StateAwaitingLocation          State = "awaiting_location"
	StateAwaitingBranchSelection   State = "awaiting_branch_selection"
	StateAwaitingConfirmation      State = "awaiting_confirmation"
	StateFinalizing                State = "finalizing"
	StateCompleted                 State = "completed"
	StateCancelled                 State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateIdle, StateAwaitingFulfillmentChoice, StateAwaitingLocation, StateAwaitingBranchSelection,
		StateAwaitingConfirmation, StateFinalizing, StateCompleted, StateCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal states are never persisted; reaching one clears the session.
func (s State) IsTerminal() bool {
	return s == StateIdle || s == StateCompleted || s == StateCancelled
}

// Session is the per-user conversation state between inbound events.
type Session struct {
	userID          int64
	state           State
	fulfillmentType *order.FulfillmentType
	location        *order.Location
	branchID        *int64
	updatedAt       time.Time
}

func NewSession(userID int64) *Session {
	return &Session{userID: userID, state: StateIdle}
}

func ReconstructSession(
	userID int64,
	state State,
	fulfillmentType *order.FulfillmentType,
	location *order.Location,
	branchID *int64,
	updatedAt time.Time,
) *Session {
	return &Session{
		userID:          userID,
		state:           state,
		fulfillmentType: fulfillmentType,
		location:        location,
		branchID:        branchID,
		updatedAt:       updatedAt,
	}
}

// Start begins, or restarts, the conversation. The non-empty basket guard is
// checked by the caller against live storage.
func (s *Session) Start(now time.Time) error {
	if s.state == StateFinalizing {
		return ErrInvalidTransition
	}
	s.clearSelections()
	return s.moveTo(StateAwaitingFulfillmentChoice, now)
}

func (s *Session) ChooseDelivery(now time.Time) error {
	if s.state != StateAwaitingFulfillmentChoice {
		return ErrInvalidTransition
	}
	t := order.FulfillmentDelivery
	s.fulfillmentType = &t
	return s.moveTo(StateAwaitingLocation, now)
}

func (s *Session) ChoosePickup(now time.Time) error {
	if s.state != StateAwaitingFulfillmentChoice {
		return ErrInvalidTransition
	}
	t := order.FulfillmentPickup
	s.fulfillmentType = &t
	return s.moveTo(StateAwaitingBranchSelection, now)
}

func (s *Session) ProvideLocation(loc order.Location, now time.Time) error {
	if s.state != StateAwaitingLocation {
		return ErrInvalidTransition
	}
	s.location = &loc
	return s.moveTo(StateAwaitingConfirmation, now)
}

// SelectBranch records the branch; existence is verified by the caller.
func (s *Session) SelectBranch(branchID int64, now time.Time) error {
	if s.state != StateAwaitingBranchSelection {
		return ErrInvalidTransition
	}
	s.branchID = &branchID
	return s.moveTo(StateAwaitingConfirmation, now)
}

// BeginFinalize returns the completed intent and enters Finalizing.
func (s *Session) BeginFinalize(now time.Time) (order.Fulfillment, error) {
	if s.state != StateAwaitingConfirmation {
		return order.Fulfillment{}, ErrInvalidTransition
	}
	intent, err := s.Intent()
	if err != nil {
		return order.Fulfillment{}, err
	}
	if err := s.moveTo(StateFinalizing, now); err != nil {
		return order.Fulfillment{}, err
	}
	return intent, nil
}

func (s *Session) CompleteFinalize(now time.Time) error {
	if s.state != StateFinalizing {
		return ErrInvalidTransition
	}
	return s.moveTo(StateCompleted, now)
}

// FailFinalize returns to confirmation with selections intact.
func (s *Session) FailFinalize(now time.Time) error {
	if s.state != StateFinalizing {
		return ErrInvalidTransition
	}
	return s.moveTo(StateAwaitingConfirmation, now)
}

// ReselectBranch is used when the chosen branch disappeared before commit.
func (s *Session) ReselectBranch(now time.Time) error {
	if s.state != StateAwaitingConfirmation || s.fulfillmentType == nil || *s.fulfillmentType != order.FulfillmentPickup {
		return ErrInvalidTransition
	}
	s.branchID = nil
	return s.moveTo(StateAwaitingBranchSelection, now)
}

func (s *Session) Decline(now time.Time) error {
	if s.state != StateAwaitingConfirmation {
		return ErrInvalidTransition
	}
	s.clearSelections()
	return s.moveTo(StateIdle, now)
}

// Reset is the explicit cancel; allowed from any state.
func (s *Session) Reset(now time.Time) {
	s.clearSelections()
	s.state = StateCancelled
	s.updatedAt = now
}

func (s *Session) Intent() (order.Fulfillment, error) {
	if s.fulfillmentType == nil {
		return order.Fulfillment{}, ErrIncompleteIntent
	}
	switch *s.fulfillmentType {
	case order.FulfillmentDelivery:
		if s.location == nil {
			return order.Fulfillment{}, ErrIncompleteIntent
		}
		return order.NewDelivery(*s.location), nil
	case order.FulfillmentPickup:
		if s.branchID == nil {
			return order.Fulfillment{}, ErrIncompleteIntent
		}
		return order.NewPickup(*s.branchID)
	default:
		return order.Fulfillment{}, ErrIncompleteIntent
	}
}

func (s *Session) moveTo(next State, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidTransition
	}
	s.state = next
	s.updatedAt = now
	return nil
}

func (s *Session) clearSelections() {
	s.fulfillmentType = nil
	s.location = nil
	s.branchID = nil
}

func (s *Session) UserID() int64                           { return s.userID }
func (s *Session) State() State                            { return s.state }
func (s *Session) FulfillmentType() *order.FulfillmentType { return s.fulfillmentType }
func (s *Session) Location() *order.Location               { return s.location }
func (s *Session) BranchID() *int64                        { return s.branchID }
func (s *Session) UpdatedAt() time.Time                    { return s.updatedAt }
