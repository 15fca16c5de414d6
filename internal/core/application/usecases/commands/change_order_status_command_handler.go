package commands

import (
	"context"
	"log/slog"
)

// ChangeOrderStatusCommandHandler handles admin-driven status moves: load,
// transition, persist, then notify the customer and refresh the admin card.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status moves.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory, notifier Notifier, log *slog.Logger) ChangeOrderStatusCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "change_order_status"),
	}
}

// Handle processes the status move. Illegal transitions surface the
// aggregate's error and nothing is persisted or sent.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
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

	h.notifier.OrderStatusChanged(ctx, aggregate, customer.TgID())
	return nil
}
