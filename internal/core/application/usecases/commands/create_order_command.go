package commands

import (
	"errors"

	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrPhoneIsRequired        = errors.New("phone is required")
	ErrItemsAreRequired       = errors.New("at least one item is required")
	ErrTgIDIsRequired         = errors.New("tg id is required")
)

// OrderItemData carries one cart line into the order placement command.
type OrderItemData struct {
	FoodID *int64
	Name   string
	Price  int64
	Qty    int
}

// CreateOrderCommand represents a request to place a new food order for a
// registered customer. The items are the customer's cart at checkout time;
// the total has been computed (with any promo discount applied) by the
// ordering surface.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	userTgID     int64
	customerName string
	phone        string
	comment      string
	total        int64
	location     kernel.Location
	promoCode    string
	items        []OrderItemData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order. Validates
// presence of the customer identity, contact data, delivery location and
// items; the total minimum is enforced by the order aggregate.
func NewCreateOrderCommand(
	userTgID int64,
	customerName string,
	phone string,
	comment string,
	total int64,
	location kernel.Location,
	promoCode string,
	items []OrderItemData,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserTgID(userTgID),
		cmd.setCustomerName(customerName),
		cmd.setPhone(phone),
		cmd.setLocation(location),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.comment = comment
	cmd.total = total
	cmd.promoCode = promoCode
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// UserTgID returns the customer's messenger account id.
func (c CreateOrderCommand) UserTgID() int64 {
	return c.userTgID
}

// CustomerName returns the contact name for the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the contact phone for the order.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// Comment returns the free-form note for the kitchen, possibly empty.
func (c CreateOrderCommand) Comment() string {
	return c.comment
}

// Total returns the order total in sum.
func (c CreateOrderCommand) Total() int64 {
	return c.total
}

// Location returns the delivery location.
func (c CreateOrderCommand) Location() kernel.Location {
	return c.location
}

// PromoCode returns the promo code applied at checkout, empty when none.
func (c CreateOrderCommand) PromoCode() string {
	return c.promoCode
}

// Items returns the cart lines.
func (c CreateOrderCommand) Items() []OrderItemData {
	return c.items
}

func (c *CreateOrderCommand) setUserTgID(tgID int64) error {
	if tgID == 0 {
		return ErrTgIDIsRequired
	}
	c.userTgID = tgID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemData) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	c.items = items
	return nil
}
