// Package promo provides the Promo aggregate: discount codes validated at
// order time and consumed once per successful order.
//
// Codes are case-insensitive and stored normalized to uppercase. A promo can
// carry an expiry and a usage cap; redeemability is checked in a fixed order
// (unknown, inactive, expired, exhausted) so callers can collapse every
// rejection into a single not-found answer for the client.
package promo
