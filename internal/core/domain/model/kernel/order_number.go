package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fiesta/internal/pkg/errs"

	"github.com/google/uuid"
)

// orderNumberPrefix is the single uppercase letter every order number starts
// with. It is part of the persisted format and must never change for
// historical orders.
const orderNumberPrefix = "F"

var orderNumberPattern = regexp.MustCompile(`^[A-Z][0-9A-Z]{8}$`)

// ErrOrderNumberIsNotConstructed indicates a zero-value OrderNumber that
// bypassed the constructors.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via NewOrderNumber or OrderNumberFromString")

// OrderNumber is the human-facing order identifier: a single uppercase letter
// prefix followed by 8 uppercase alphanumeric characters. It is generated
// once at order creation, globally unique, immutable, and is the only
// identifier ever shown to customers (the internal numeric id stays private).
//
// Example:
//
//	number := kernel.NewOrderNumber()
//	fmt.Println(number.String()) // e.g. "F3A9C01DE"
type OrderNumber struct {
	value string
}

// NewOrderNumber generates a fresh order number. The 8-character tail is
// taken from a random v4 UUID, uppercased; collisions are negligible at the
// expected order volume and additionally rejected by the unique index on the
// orders table.
func NewOrderNumber() OrderNumber {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return OrderNumber{value: orderNumberPrefix + strings.ToUpper(raw[:8])}
}

// OrderNumberFromString parses a persisted order number, validating the fixed
// format. Used when reconstructing orders from storage or resolving inbound
// references.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if s == "" {
		return OrderNumber{}, errs.NewValueIsRequiredError("orderNumber")
	}
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match the order number format", s))
	}
	return OrderNumber{value: s}, nil
}

// String returns the canonical string form, e.g. "F3A9C01DE".
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate rejects zero-value order numbers.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}
