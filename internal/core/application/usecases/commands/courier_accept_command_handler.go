package commands

import (
	"context"
	"log/slog"

	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/pkg/errs"
)

// CourierAcceptCommandHandler handles a courier accepting their assignment.
// Only the assigned courier may accept: the acting identity is resolved to a
// courier (channel address first, then private chat) and checked against the
// order's assignment before anything changes.
type CourierAcceptCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewCourierAcceptCommandHandler creates a handler for courier acceptance.
func NewCourierAcceptCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier, log *slog.Logger) CourierAcceptCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return CourierAcceptCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "courier_accept"),
	}
}

// Handle processes the acceptance: the order moves to out-for-delivery and
// the courier's card swaps its accept button for a delivered one.
func (h *CourierAcceptCommandHandler) Handle(ctx context.Context, cmd CourierAcceptCommand) error {
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

	if err = aggregate.ChangeStatus(order.StatusOutForDelivery); err != nil {
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

	h.notifier.CourierAccepted(ctx, aggregate, actor, cmd.ActingMessageID(), customer.TgID())
	return nil
}

// resolveAssignedCourier loads the order and maps the acting identity to a
// courier, rejecting anyone but the assigned one. Identity resolution and
// the exclusivity check are shared by acceptance and delivery.
func resolveAssignedCourier(ctx context.Context, uow AssignmentUoW, orderID, identity int64) (*order.Order, *courier.Courier, error) {
	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	actor, err := uow.CourierRepository().GetByIdentity(ctx, identity)
	if err != nil {
		return nil, nil, errs.NewUnauthorizedError(identity, "unknown courier identity")
	}

	if !actor.MatchesIdentity(identity) || !aggregate.IsAssignedTo(actor.ID()) {
		return nil, nil, errs.NewUnauthorizedError(identity, "order is assigned to another courier")
	}

	return aggregate, actor, nil
}
