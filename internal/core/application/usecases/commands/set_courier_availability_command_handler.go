package commands

import (
	"context"
)

// SetCourierAvailabilityCommandHandler toggles a courier's availability.
// Setting a courier inactive does not touch their current assignments; it
// only keeps new orders away.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
func (h *SetCourierAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetCourierAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.CourierRepository().GetByIdentity(ctx, cmd.ActingIdentity())
	if err != nil {
		return err
	}

	actor.SetActive(cmd.Active())

	if err = uow.CourierRepository().Update(ctx, actor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
