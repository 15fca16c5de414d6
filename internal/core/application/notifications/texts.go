package notifications

import (
	"fmt"
	"strings"

	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/ports"
)

// customerStatusTexts is what the customer sees when their order moves.
// StatusNew is absent: creation has its own confirmation message.
var customerStatusTexts = map[order.Status]string{
	order.StatusConfirmed:       "Your order %s has been confirmed. We are on it!",
	order.StatusCooking:         "Your order %s is being cooked.",
	order.StatusCourierAssigned: "A courier has been assigned to your order %s.",
	order.StatusOutForDelivery:  "Your order %s is out for delivery. The courier is on the way!",
	order.StatusDelivered:       "Your order %s has been delivered. Enjoy your meal!",
	order.StatusCanceled:        "Your order %s has been canceled. Contact us if this is a mistake.",
}

var adminStatusLabels = map[order.Status]string{
	order.StatusNew:             "New",
	order.StatusConfirmed:       "Confirmed",
	order.StatusCooking:         "Cooking",
	order.StatusCourierAssigned: "Courier assigned",
	order.StatusOutForDelivery:  "Out for delivery",
	order.StatusDelivered:       "Delivered",
	order.StatusCanceled:        "Canceled",
}

var adminActionLabels = map[order.Status]string{
	order.StatusConfirmed:      "Confirm",
	order.StatusCooking:        "Start cooking",
	order.StatusOutForDelivery: "Out for delivery",
	order.StatusDelivered:      "Delivered",
}

// customerCreatedText acknowledges a freshly placed order.
func customerCreatedText(o *order.Order) string {
	return fmt.Sprintf(
		"Order %s accepted!\nTotal: %d sum.\nWe will notify you as it progresses.",
		o.Number(), o.Total(),
	)
}

func customerStatusText(o *order.Order) string {
	tmpl, ok := customerStatusTexts[o.Status()]
	if !ok {
		return ""
	}
	return fmt.Sprintf(tmpl, o.Number())
}

// adminCardText renders the single admin channel card for an order. The same
// renderer serves the first send and every subsequent edit so the card never
// drifts from the aggregate state.
func adminCardText(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s [%s]\n", o.Number(), adminStatusLabels[o.Status()])
	fmt.Fprintf(&b, "Customer: %s, %s\n", o.CustomerName(), o.Phone())
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "  %s x%d = %d\n", item.Name(), item.Qty(), item.LineTotal())
	}
	fmt.Fprintf(&b, "Total: %d sum\n", o.Total())
	if o.PromoCode() != "" {
		fmt.Fprintf(&b, "Promo: %s\n", o.PromoCode())
	}
	if o.Comment() != "" {
		fmt.Fprintf(&b, "Comment: %s\n", o.Comment())
	}
	fmt.Fprintf(&b, "Location: %s", o.Location().MapURL())
	return b.String()
}

// adminCardKeyboard returns the action buttons for an order card. Closed
// orders get no keyboard, which strips the buttons on the final edit.
func adminCardKeyboard(o *order.Order) ports.Keyboard {
	if o.IsClosed() {
		return nil
	}

	var kb ports.Keyboard
	for _, next := range []order.Status{
		order.StatusConfirmed,
		order.StatusCooking,
		order.StatusOutForDelivery,
		order.StatusDelivered,
	} {
		if o.Status().CanTransitionTo(next) != nil {
			continue
		}
		kb = append(kb, ports.Row(ports.Button{
			Text:         adminActionLabels[next],
			CallbackData: fmt.Sprintf("order:%d:status:%s", o.ID(), next),
		}))
	}
	kb = append(kb, ports.Row(
		ports.Button{Text: "Assign courier", CallbackData: fmt.Sprintf("order:%d:assign", o.ID())},
		ports.Button{Text: "Cancel", CallbackData: fmt.Sprintf("order:%d:cancel", o.ID())},
	))
	return kb
}

// courierCardText renders the order card sent to the assigned courier.
func courierCardText(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Delivery %s\n", o.Number())
	fmt.Fprintf(&b, "Customer: %s, %s\n", o.CustomerName(), o.Phone())
	fmt.Fprintf(&b, "Total: %d sum\n", o.Total())
	fmt.Fprintf(&b, "Location: %s", o.Location().MapURL())
	return b.String()
}

func courierAssignedKeyboard(o *order.Order) ports.Keyboard {
	return ports.Keyboard{ports.Row(ports.Button{
		Text:         "Accept",
		CallbackData: fmt.Sprintf("courier:%d:accept", o.ID()),
	})}
}

func courierAcceptedKeyboard(o *order.Order) ports.Keyboard {
	return ports.Keyboard{ports.Row(ports.Button{
		Text:         "Delivered",
		CallbackData: fmt.Sprintf("courier:%d:deliver", o.ID()),
	})}
}

func courierDeliveredText(o *order.Order, c *courier.Courier) string {
	return fmt.Sprintf("Delivery %s completed by %s.", o.Number(), c.Name())
}
