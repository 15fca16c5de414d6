package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a customer opening the bot, possibly via a
// referral link carrying the referrer's messenger id. Registration is
// idempotent: a returning customer only refreshes their profile fields and
// never reattaches the referral chain.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	tgID       int64
	username   string
	fullName   string
	referrerTg int64

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a registration command. referrerTg is the
// referrer's messenger id, 0 when the customer came without a link.
func NewRegisterUserCommand(tgID int64, username, fullName string, referrerTg int64) (RegisterUserCommand, error) {
	if tgID == 0 {
		return RegisterUserCommand{}, ErrTgIDIsRequired
	}

	return RegisterUserCommand{
		tgID:       tgID,
		username:   username,
		fullName:   fullName,
		referrerTg: referrerTg,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// TgID returns the customer's messenger account id.
func (c RegisterUserCommand) TgID() int64 {
	return c.tgID
}

// Username returns the messenger username, possibly empty.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// FullName returns the display name, possibly empty.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// ReferrerTg returns the referrer's messenger id, 0 when absent.
func (c RegisterUserCommand) ReferrerTg() int64 {
	return c.referrerTg
}
