package commands

import (
	"context"
	"errors"
	"log/slog"

	"fiesta/internal/core/domain/model/user"
	"fiesta/internal/pkg/errs"
)

// RegisterUserCommandHandler registers customers on first contact. Self
// referrals and unknown referrers are silently dropped rather than failing
// registration; a broken link should never keep a customer out.
type RegisterUserCommandHandler struct {
	uowFactory ReferralUoWFactory
	log        *slog.Logger
}

// NewRegisterUserCommandHandler creates a handler for customer registration.
func NewRegisterUserCommandHandler(uowFactory ReferralUoWFactory, log *slog.Logger) RegisterUserCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "register_user"),
	}
}

// Handle processes the registration and returns the stored user, existing or
// new.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*user.User, error) {
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

	existing, err := uow.UserRepository().GetByTgID(ctx, cmd.TgID())
	if err == nil {
		existing.UpdateProfile(cmd.Username(), cmd.FullName())
		if err = uow.UserRepository().Update(ctx, existing); err != nil {
			return nil, err
		}
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	refByUserID := h.resolveReferrer(ctx, uow, cmd)

	registered, err := user.NewUser(cmd.TgID(), cmd.Username(), cmd.FullName(), refByUserID)
	if err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Add(ctx, registered); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return registered, nil
}

func (h *RegisterUserCommandHandler) resolveReferrer(ctx context.Context, uow ReferralUoW, cmd RegisterUserCommand) *int64 {
	if cmd.ReferrerTg() == 0 || cmd.ReferrerTg() == cmd.TgID() {
		return nil
	}

	referrer, err := uow.UserRepository().GetByTgID(ctx, cmd.ReferrerTg())
	if err != nil {
		h.log.Warn("referrer not resolved, registering without referral",
			"tg_id", cmd.TgID(), "referrer_tg", cmd.ReferrerTg(), "error", err)
		return nil
	}

	id := referrer.ID()
	return &id
}
