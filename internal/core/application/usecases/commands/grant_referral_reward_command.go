package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var ErrGrantReferralRewardCommandIsNotConstructed = errors.New(
	"GrantReferralRewardCommand must be created via NewGrantReferralRewardCommand constructor",
)

// GrantReferralRewardCommand asks to issue the one-time referral reward promo
// to a customer, identified by their messenger id.
type GrantReferralRewardCommand struct { //nolint:recvcheck //using for validation
	tgID int64

	guard guard.ConstructorGuard
}

// NewGrantReferralRewardCommand creates a reward issuing command.
func NewGrantReferralRewardCommand(tgID int64) (GrantReferralRewardCommand, error) {
	if tgID == 0 {
		return GrantReferralRewardCommand{}, ErrTgIDIsRequired
	}

	return GrantReferralRewardCommand{
		tgID:  tgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c GrantReferralRewardCommand) Validate() error {
	return c.guard.Validate(ErrGrantReferralRewardCommandIsNotConstructed)
}

// TgID returns the customer's messenger account id.
func (c GrantReferralRewardCommand) TgID() int64 {
	return c.tgID
}
