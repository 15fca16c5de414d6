package commands

import (
	"context"
	"log/slog"

	"fiesta/internal/core/domain/model/order"
)

// CourierDeliverCommandHandler handles delivery completion by the assigned
// courier. The order reaches its terminal delivered status with the delivery
// timestamp stamped by the aggregate, and the courier's card is removed.
type CourierDeliverCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewCourierDeliverCommandHandler creates a handler for delivery completion.
func NewCourierDeliverCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier, log *slog.Logger) CourierDeliverCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return CourierDeliverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "courier_deliver"),
	}
}

// Handle processes the delivery completion command.
func (h *CourierDeliverCommandHandler) Handle(ctx context.Context, cmd CourierDeliverCommand) error {
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

	aggregate, actor, err := resolveAssignedCourier(ctx, uow, cmd.OrderID(), cmd.ActingIdentity())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(order.StatusDelivered); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	customer, err := uow.UserRepository().Get(ctx, aggregate.UserID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.CourierDelivered(ctx, aggregate, actor, cmd.ActingMessageID(), customer.TgID())
	return nil
}
