package commands

import (
	"context"
	"errors"
	"log/slog"

	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/core/domain/model/user"
)

// ErrNotEnoughReferrals is returned when the customer has fewer registered
// referrals than the reward threshold.
var ErrNotEnoughReferrals = errors.New("not enough referrals for a reward")

// GrantReferralRewardCommandHandler issues the one-time referral reward: a
// single-use discount promo earned by bringing enough new customers.
//
// The reward flag flip is a conditional update in storage, so two concurrent
// grants for the same customer race on it and exactly one wins; the loser
// sees user.ErrRewardAlreadyGranted and no second promo is created.
type GrantReferralRewardCommandHandler struct {
	uowFactory ReferralUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewGrantReferralRewardCommandHandler creates a handler for reward issuing.
func NewGrantReferralRewardCommandHandler(uowFactory ReferralUoWFactory, notifier Notifier, log *slog.Logger) GrantReferralRewardCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return GrantReferralRewardCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "grant_referral_reward"),
	}
}

// Handle processes the reward issuing command and returns the created promo.
func (h *GrantReferralRewardCommandHandler) Handle(ctx context.Context, cmd GrantReferralRewardCommand) (*promo.Promo, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.UserRepository().GetByTgID(ctx, cmd.TgID())
	if err != nil {
		return nil, err
	}
	if customer.RewardGranted() {
		return nil, user.ErrRewardAlreadyGranted
	}

	referrals, err := uow.UserRepository().CountReferrals(ctx, customer.ID())
	if err != nil {
		return nil, err
	}
	if referrals < user.ReferralRewardThreshold {
		return nil, ErrNotEnoughReferrals
	}

	if err = uow.UserRepository().MarkRewardGranted(ctx, customer.ID()); err != nil {
		return nil, err
	}

	singleUse := 1
	reward, err := promo.NewPromo(
		promo.GenerateCode(promo.GeneratedCodeLength),
		user.ReferralRewardDiscountPercent,
		nil,
		&singleUse,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.PromoRepository().Add(ctx, reward); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.ReferralRewardGranted(ctx, customer.TgID(), reward.Code(), reward.DiscountPercent())
	return reward, nil
}
