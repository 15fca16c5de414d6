package queries

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var ErrGetReferralStatsQueryIsNotConstructed = errors.New(
	"GetReferralStatsQuery must be created via NewGetReferralStatsQuery constructor",
)

// GetReferralStatsQuery retrieves a customer's referral progress: how many
// people they brought and whether the reward can still be claimed.
type GetReferralStatsQuery struct {
	tgID int64

	guard guard.ConstructorGuard
}

// NewGetReferralStatsQuery creates a referral stats query.
func NewGetReferralStatsQuery(tgID int64) (GetReferralStatsQuery, error) {
	if tgID == 0 {
		return GetReferralStatsQuery{}, ErrTgIDIsRequired
	}

	return GetReferralStatsQuery{
		tgID:  tgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReferralStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetReferralStatsQueryIsNotConstructed)
}

// TgID returns the customer's messenger account id.
func (q GetReferralStatsQuery) TgID() int64 {
	return q.tgID
}

// GetReferralStatsQueryResponse is the customer's referral progress.
type GetReferralStatsQueryResponse struct {
	Referrals       int
	Threshold       int
	RewardGranted   bool
	RewardAvailable bool
}
