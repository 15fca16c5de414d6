package commands

import (
	"context"
	"log/slog"
	"time"

	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/domain/model/promo"
)

// CreateOrderCommandHandler handles order placement: promo consumption, order
// persistence and the initial notification fan-out.
//
// The order is committed before any message goes out, so a messenger outage
// can never lose an order. The admin card's message id comes back from the
// dispatcher and is stored in a short follow-up transaction; when that send
// failed the order simply has no card and later admin edits are skipped.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   Notifier
	log        *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory, notifier Notifier, log *slog.Logger) CreateOrderCommandHandler {
	if log == nil {
		log = slog.Default()
	}
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		log:        log.With("component", "create_order"),
	}
}

// Handle processes the order placement command and returns the persisted
// order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	customer, err := uow.UserRepository().GetByTgID(ctx, cmd.UserTgID())
	if err != nil {
		return nil, err
	}

	promoCode := ""
	if cmd.PromoCode() != "" {
		promoCode = promo.NormalizeCode(cmd.PromoCode())
		applied, err := uow.PromoRepository().GetByCode(ctx, promoCode)
		if err != nil {
			return nil, err
		}
		if err = applied.CheckRedeemable(time.Now().UTC()); err != nil {
			return nil, err
		}
		if err = uow.PromoRepository().ConsumeUsage(ctx, promoCode); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewItem(line.FoodID, line.Name, line.Price, line.Qty)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewOrderNumber(),
		customer.ID(),
		cmd.CustomerName(),
		cmd.Phone(),
		cmd.Comment(),
		cmd.Total(),
		cmd.Location(),
		promoCode,
		items,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	messageID := h.notifier.OrderCreated(ctx, aggregate, customer.TgID())
	if messageID != 0 {
		h.storeChannelMessageID(ctx, aggregate, messageID)
	}

	return aggregate, nil
}

// storeChannelMessageID persists the admin card's message id in its own
// transaction. The order is already placed; losing the id only degrades
// later admin edits, so failures are logged and swallowed.
func (h *CreateOrderCommandHandler) storeChannelMessageID(ctx context.Context, aggregate *order.Order, messageID int64) {
	if err := aggregate.SetChannelMessageID(messageID); err != nil {
		h.log.Warn("channel message id rejected", "order", aggregate.Number().String(), "error", err)
		return
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		h.log.Warn("channel message id not stored", "order", aggregate.Number().String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		h.log.Warn("channel message id not stored", "order", aggregate.Number().String(), "error", err)
		return
	}
	if err := uow.Commit(ctx); err != nil {
		h.log.Warn("channel message id not stored", "order", aggregate.Number().String(), "error", err)
	}
}
