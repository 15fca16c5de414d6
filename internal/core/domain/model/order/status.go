package order

import (
	"fmt"

	"fiesta/internal/pkg/errs"
)

// Status is the lifecycle state of an order. It is a closed enumeration of
// exactly seven tokens; any other string is a data-integrity error, not a
// valid state. The canonical string form is what the storage layer persists,
// and no domain logic ever compares against raw literals outside this file.
//
// State transitions:
//
//	NEW ──> CONFIRMED ──> COOKING ──> COURIER_ASSIGNED ──> OUT_FOR_DELIVERY ──> DELIVERED
//	 │          │            │               │ ▲                  │
//	 └──────────┴────────────┴───────────────┼─┘(reassignment)────┴──────> CANCELED
//
// Forward moves may skip intermediate states (an admin can take a NEW order
// straight to COOKING). COURIER_ASSIGNED is reachable from any non-terminal
// status so that assignment and reassignment work regardless of kitchen
// progress. DELIVERED and CANCELED accept nothing further.
type Status string

const (
	StatusNew             Status = "NEW"
	StatusConfirmed       Status = "CONFIRMED"
	StatusCooking         Status = "COOKING"
	StatusCourierAssigned Status = "COURIER_ASSIGNED"
	StatusOutForDelivery  Status = "OUT_FOR_DELIVERY"
	StatusDelivered       Status = "DELIVERED"
	StatusCanceled        Status = "CANCELED"
)

// statusRank orders the forward lifecycle chain. CANCELED is deliberately
// absent: it is reached by its own rule, not by rank comparison.
var statusRank = map[Status]int{
	StatusNew:             1,
	StatusConfirmed:       2,
	StatusCooking:         3,
	StatusCourierAssigned: 4,
	StatusOutForDelivery:  5,
	StatusDelivered:       6,
}

// ParseStatus converts an external token into a Status, rejecting anything
// outside the closed enumeration.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the seven known tokens.
func (s Status) Validate() error {
	switch s {
	case StatusNew, StatusConfirmed, StatusCooking, StatusCourierAssigned,
		StatusOutForDelivery, StatusDelivered, StatusCanceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the canonical token, e.g. "OUT_FOR_DELIVERY".
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status is a closed state (DELIVERED or
// CANCELED) from which no further transitions are expected.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// CanTransitionTo validates a transition from s to target against the
// lifecycle graph.
//
// Rules:
//   - terminal statuses accept no transitions at all
//   - CANCELED is reachable from any non-terminal status
//   - COURIER_ASSIGNED is reachable from any non-terminal status, which
//     covers both first assignment and reassignment
//   - otherwise the target must be strictly further along the forward chain
func (s Status) CanTransitionTo(target Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, target))
	}

	if target == StatusCanceled || target == StatusCourierAssigned {
		return nil
	}

	if statusRank[target] <= statusRank[s] {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot transition from %s back to %s", s, target))
	}

	return nil
}
