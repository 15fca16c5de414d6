// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - OrderNumber: the immutable, customer-facing order identifier
//   - Location: validated delivery coordinates
//
// All value objects are immutable, validate themselves on construction, and
// follow the constructor pattern: zero values are invalid and Validate()
// detects them.
package kernel
