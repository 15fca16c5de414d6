// Package order provides domain entities and business logic for the order
// lifecycle. It implements the Order aggregate root, the order Status state
// machine, and the Item line entries with their name/price snapshots.
//
// Key business rules:
//   - Orders are created in StatusNew and move forward through the lifecycle:
//     NEW -> CONFIRMED -> COOKING -> COURIER_ASSIGNED -> OUT_FOR_DELIVERY -> DELIVERED
//   - CANCELED is reachable from any non-terminal status
//   - DELIVERED and CANCELED are terminal: no further transitions
//   - Courier assignment is allowed from any non-terminal status, including
//     reassignment of an already-assigned order
//   - DeliveredAt is stamped exactly when the order becomes DELIVERED, using
//     the transition time, never a caller-supplied one
//   - Item snapshots (name, price, line total) are captured at order time and
//     never recomputed, so catalog edits cannot alter historical orders
//
// The package follows the same aggregate conventions as the rest of the
// domain model: private fields, validating constructors, and Restore
// functions for rehydration from persistence.
package order
