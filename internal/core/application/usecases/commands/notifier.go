package commands

import (
	"context"

	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/order"
)

// Notifier is the slice of the notification dispatcher that command handlers
// use. Handlers call it strictly after a successful commit; a notification
// failure never fails the command.
type Notifier interface {
	OrderCreated(ctx context.Context, o *order.Order, customerChatID int64) int64
	OrderStatusChanged(ctx context.Context, o *order.Order, customerChatID int64)
	CourierAssigned(ctx context.Context, o *order.Order, c *courier.Courier, customerChatID int64)
	CourierAccepted(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID, customerChatID int64)
	CourierDelivered(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID, customerChatID int64)
	ReferralRewardGranted(ctx context.Context, chatID int64, code string, discountPercent int)
}
