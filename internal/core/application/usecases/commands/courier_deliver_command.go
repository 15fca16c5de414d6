package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var ErrCourierDeliverCommandIsNotConstructed = errors.New(
	"CourierDeliverCommand must be created via NewCourierDeliverCommand constructor",
)

// CourierDeliverCommand represents the assigned courier marking the order as
// handed to the customer. Field semantics match CourierAcceptCommand.
type CourierDeliverCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	actingIdentity  int64
	actingMessageID int64

	guard guard.ConstructorGuard
}

// NewCourierDeliverCommand creates a command for a courier completing a delivery.
func NewCourierDeliverCommand(orderID, actingIdentity, actingMessageID int64) (CourierDeliverCommand, error) {
	cmd := CourierDeliverCommand{
		actingMessageID: actingMessageID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingIdentity(actingIdentity),
	); err != nil {
		return CourierDeliverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CourierDeliverCommand) Validate() error {
	return c.guard.Validate(ErrCourierDeliverCommandIsNotConstructed)
}

// OrderID returns the storage id of the order.
func (c CourierDeliverCommand) OrderID() int64 {
	return c.orderID
}

// ActingIdentity returns the chat id the action came from.
func (c CourierDeliverCommand) ActingIdentity() int64 {
	return c.actingIdentity
}

// ActingMessageID returns the id of the message the button lived on, 0 when
// unknown.
func (c CourierDeliverCommand) ActingMessageID() int64 {
	return c.actingMessageID
}

func (c *CourierDeliverCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *CourierDeliverCommand) setActingIdentity(identity int64) error {
	if identity == 0 {
		return ErrActingIdentityIsRequired
	}
	c.actingIdentity = identity
	return nil
}
