package queries

import (
	"context"
	"database/sql"
	"errors"

	"fiesta/internal/core/domain/model/user"
	"fiesta/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReferralStatsQueryHandler computes a customer's referral progress in a
// single round trip.
type GetReferralStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetReferralStatsQueryHandler creates a handler for referral stats queries.
func NewGetReferralStatsQueryHandler(db *gorm.DB) GetReferralStatsQueryHandler {
	return GetReferralStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetReferralStatsQueryHandler) Handle(ctx context.Context, query GetReferralStatsQuery) (GetReferralStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReferralStatsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			u.promo_given,
			(SELECT COUNT(*) FROM users r WHERE r.ref_by_user_id = u.id) AS referrals
		FROM users u
		WHERE u.tg_id = ?
	`, query.TgID()).Row()

	var (
		rewardGranted bool
		referrals     int
	)
	if err := row.Scan(&rewardGranted, &referrals); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return GetReferralStatsQueryResponse{}, errs.NewObjectNotFoundError("tgID", query.TgID())
		}
		return GetReferralStatsQueryResponse{}, err
	}

	return GetReferralStatsQueryResponse{
		Referrals:       referrals,
		Threshold:       user.ReferralRewardThreshold,
		RewardGranted:   rewardGranted,
		RewardAvailable: !rewardGranted && referrals >= user.ReferralRewardThreshold,
	}, nil
}
