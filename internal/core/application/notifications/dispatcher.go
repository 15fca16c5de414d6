package notifications

import (
	"context"
	"fmt"
	"log/slog"

	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/ports"
	"fiesta/internal/pkg/errs"
)

// Dispatcher fans order lifecycle events out to the customer, admin and
// courier surfaces. It holds no state of its own; the admin card's message id
// lives on the order aggregate.
type Dispatcher struct {
	messenger ports.Messenger
	settings  ports.SettingsProvider
	log       *slog.Logger
}

// NewDispatcher creates a dispatcher over the given messenger and settings
// provider.
func NewDispatcher(messenger ports.Messenger, settings ports.SettingsProvider, log *slog.Logger) (*Dispatcher, error) {
	if messenger == nil {
		return nil, errs.NewValueIsRequiredError("messenger")
	}
	if settings == nil {
		return nil, errs.NewValueIsRequiredError("settings")
	}
	if log == nil {
		log = slog.Default()
	}

	return &Dispatcher{
		messenger: messenger,
		settings:  settings,
		log:       log.With("component", "notifications"),
	}, nil
}

// OrderCreated acknowledges the order to the customer and posts the admin
// channel card. It returns the card's message id (0 when the post failed) so
// the caller can store it on the order; the id is captured exactly once here
// and every later admin update is an edit of this message.
func (d *Dispatcher) OrderCreated(ctx context.Context, o *order.Order, customerChatID int64) int64 {
	if customerChatID != 0 {
		if _, err := d.messenger.SendMessage(ctx, customerChatID, customerCreatedText(o), nil); err != nil {
			d.log.Warn("customer notify failed", "order", o.Number().String(), "error", err)
		}
	}

	channelID, err := d.settings.ShopChannelID(ctx)
	if err != nil {
		d.log.Warn("shop channel unresolved, admin card skipped", "order", o.Number().String(), "error", err)
		return 0
	}

	messageID, err := d.messenger.SendMessage(ctx, channelID, adminCardText(o), adminCardKeyboard(o))
	if err != nil {
		d.log.Warn("admin card send failed", "order", o.Number().String(), "error", err)
		return 0
	}
	return messageID
}

// OrderStatusChanged notifies the customer about the new status and edits the
// admin card in place. When the order is closed the edit carries no keyboard,
// stripping the action buttons. Orders without a captured card id skip the
// admin edit.
func (d *Dispatcher) OrderStatusChanged(ctx context.Context, o *order.Order, customerChatID int64) {
	if text := customerStatusText(o); text != "" && customerChatID != 0 {
		if _, err := d.messenger.SendMessage(ctx, customerChatID, text, nil); err != nil {
			d.log.Warn("customer notify failed", "order", o.Number().String(), "error", err)
		}
	}

	d.refreshAdminCard(ctx, o)
}

func (d *Dispatcher) refreshAdminCard(ctx context.Context, o *order.Order) {
	messageID := o.ChannelMessageID()
	if messageID == nil {
		d.log.Warn("no admin card to edit", "order", o.Number().String())
		return
	}

	channelID, err := d.settings.ShopChannelID(ctx)
	if err != nil {
		d.log.Warn("shop channel unresolved, admin edit skipped", "order", o.Number().String(), "error", err)
		return
	}

	if err := d.messenger.EditMessage(ctx, channelID, *messageID, adminCardText(o), adminCardKeyboard(o)); err != nil {
		d.log.Warn("admin card edit failed", "order", o.Number().String(), "error", err)
	}
}

// CourierAssigned sends the order card to the courier's notification address
// with an accept button, tells the customer and refreshes the admin card.
func (d *Dispatcher) CourierAssigned(ctx context.Context, o *order.Order, c *courier.Courier, customerChatID int64) {
	if _, err := d.messenger.SendMessage(ctx, c.NotificationAddress(), courierCardText(o), courierAssignedKeyboard(o)); err != nil {
		d.log.Warn("courier notify failed",
			"order", o.Number().String(), "courier", c.ID(), "error", err)
	}

	d.OrderStatusChanged(ctx, o, customerChatID)
}

// CourierAccepted swaps the accept button on the courier's card for a
// delivered button. actingMessageID is the id of the card the courier tapped;
// when it is unknown a fresh card is sent instead.
func (d *Dispatcher) CourierAccepted(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID int64, customerChatID int64) {
	if actingMessageID != 0 {
		err := d.messenger.EditMessage(ctx, c.NotificationAddress(), actingMessageID, courierCardText(o), courierAcceptedKeyboard(o))
		if err != nil {
			d.log.Warn("courier card edit failed",
				"order", o.Number().String(), "courier", c.ID(), "error", err)
		}
	} else {
		if _, err := d.messenger.SendMessage(ctx, c.NotificationAddress(), courierCardText(o), courierAcceptedKeyboard(o)); err != nil {
			d.log.Warn("courier notify failed",
				"order", o.Number().String(), "courier", c.ID(), "error", err)
		}
	}

	d.OrderStatusChanged(ctx, o, customerChatID)
}

// CourierDelivered removes the courier's card; platforms refuse deletion of
// old messages, so a failed delete degrades to an edit with the buttons
// stripped.
func (d *Dispatcher) CourierDelivered(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID int64, customerChatID int64) {
	if actingMessageID != 0 {
		if err := d.messenger.DeleteMessage(ctx, c.NotificationAddress(), actingMessageID); err != nil {
			d.log.Warn("courier card delete failed, editing instead",
				"order", o.Number().String(), "courier", c.ID(), "error", err)
			if err := d.messenger.EditMessage(ctx, c.NotificationAddress(), actingMessageID, courierDeliveredText(o, c), nil); err != nil {
				d.log.Warn("courier card edit failed",
					"order", o.Number().String(), "courier", c.ID(), "error", err)
			}
		}
	}

	d.OrderStatusChanged(ctx, o, customerChatID)
}

// ReferralRewardGranted tells a customer they earned a reward promo.
func (d *Dispatcher) ReferralRewardGranted(ctx context.Context, chatID int64, code string, discountPercent int) {
	text := fmt.Sprintf(
		"Thank you for spreading the word! Here is your %d%% discount code: %s (single use).",
		discountPercent, code,
	)
	if _, err := d.messenger.SendMessage(ctx, chatID, text, nil); err != nil {
		d.log.Warn("reward notify failed", "chat", chatID, "error", err)
	}
}

// AdminDigest posts free-form text to the admin channel. Used by scheduled
// jobs such as the daily stats digest.
func (d *Dispatcher) AdminDigest(ctx context.Context, text string) error {
	channelID, err := d.settings.ShopChannelID(ctx)
	if err != nil {
		return err
	}
	if _, err := d.messenger.SendMessage(ctx, channelID, text, nil); err != nil {
		return err
	}
	return nil
}
