package commands

import (
	"errors"

	"fiesta/internal/pkg/guard"
)

var (
	ErrCourierAcceptCommandIsNotConstructed = errors.New(
		"CourierAcceptCommand must be created via NewCourierAcceptCommand constructor",
	)
	ErrActingIdentityIsRequired = errors.New("acting identity is required")
)

// CourierAcceptCommand represents a courier taking the order out for
// delivery. The acting identity is the chat the button was pressed in: the
// courier's channel or their private chat. actingMessageID is the id of the
// card carrying the button, 0 when unknown.
type CourierAcceptCommand struct { //nolint:recvcheck //using for validation
	orderID         int64
	actingIdentity  int64
	actingMessageID int64

	guard guard.ConstructorGuard
}

// NewCourierAcceptCommand creates a command for a courier accepting an order.
func NewCourierAcceptCommand(orderID, actingIdentity, actingMessageID int64) (CourierAcceptCommand, error) {
	cmd := CourierAcceptCommand{
		actingMessageID: actingMessageID,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingIdentity(actingIdentity),
	); err != nil {
		return CourierAcceptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CourierAcceptCommand) Validate() error {
	return c.guard.Validate(ErrCourierAcceptCommandIsNotConstructed)
}

// OrderID returns the storage id of the order.
func (c CourierAcceptCommand) OrderID() int64 {
	return c.orderID
}

// ActingIdentity returns the chat id the action came from.
func (c CourierAcceptCommand) ActingIdentity() int64 {
	return c.actingIdentity
}

// ActingMessageID returns the id of the message the button lived on, 0 when
// unknown.
func (c CourierAcceptCommand) ActingMessageID() int64 {
	return c.actingMessageID
}

func (c *CourierAcceptCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsRequired
	}
	c.orderID = orderID
	return nil
}

func (c *CourierAcceptCommand) setActingIdentity(identity int64) error {
	if identity == 0 {
		return ErrActingIdentityIsRequired
	}
	c.actingIdentity = identity
	return nil
}
