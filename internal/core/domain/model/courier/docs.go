// Package courier provides the Courier aggregate: the delivery people that
// orders are handed to.
//
// A courier is addressable through a private chat, an optional broadcast
// channel, or both. At least one address is required for the courier to be
// assignable; the channel is preferred for notifications because several
// couriers may watch one channel while only the assigned one acts. Couriers
// are soft-disabled (active flag), never hard-deleted from order-affecting
// paths.
package courier
