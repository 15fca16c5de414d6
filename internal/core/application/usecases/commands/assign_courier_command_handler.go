package commands

import (
	"context"
	"errors"
	"log/slog"
)

// ErrCourierIsNotActive is returned when assigning an order to a courier who
// is switched off.
var ErrCourierIsNotActive = errors.New("courier is not active")

// AssignCourierCommandHandler handles courier assignment and reassignment.
// The courier must be active; the order must not be closed. On success the
// courier gets the order card with an accept button.
type AssignCourierCommandHandler struct {
	uowFactory AssignmentUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory AssignmentUoWFactory, notifier Notifier, log *slog.Logger) AssignCourierCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "assign_courier"),
	}
}

// Handle processes the assignment command.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if !assignee.IsActive() {
		return ErrCourierIsNotActive
	}

	if err = aggregate.Assign(assignee.ID()); err != nil {
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

	h.notifier.CourierAssigned(ctx, aggregate, assignee, customer.TgID())
	return nil
}
