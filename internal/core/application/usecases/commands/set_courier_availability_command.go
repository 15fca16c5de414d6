package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var ErrSetCourierAvailabilityCommandIsNotConstructed = errors.New(
	"SetCourierAvailabilityCommand must be created via NewSetCourierAvailabilityCommand constructor",
)

// SetCourierAvailabilityCommand toggles whether a courier can receive new
// assignments. Couriers toggle themselves from their own chat, so the
// courier is addressed by acting identity rather than storage id.
type SetCourierAvailabilityCommand struct { //nolint:recvcheck //using for validation
	actingIdentity int64
	active         bool

	guard guard.ConstructorGuard
}

// NewSetCourierAvailabilityCommand creates a command toggling availability.
func NewSetCourierAvailabilityCommand(actingIdentity int64, active bool) (SetCourierAvailabilityCommand, error) {
	cmd := SetCourierAvailabilityCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if actingIdentity == 0 {
		return SetCourierAvailabilityCommand{}, ErrActingIdentityIsRequired
	}
	cmd.actingIdentity = actingIdentity

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierAvailabilityCommandIsNotConstructed)
}

// ActingIdentity returns the chat id the toggle came from.
func (c SetCourierAvailabilityCommand) ActingIdentity() int64 {
	return c.actingIdentity
}

// Active returns the requested availability.
func (c SetCourierAvailabilityCommand) Active() bool {
	return c.active
}
