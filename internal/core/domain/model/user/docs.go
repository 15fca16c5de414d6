// Package user provides the User aggregate: a customer identified by their
// messenger account, optionally referred by another customer.
//
// The referral chain is write-once (set at registration, never reattached)
// and the referral reward is guarded by a one-time flag so the reward promo
// can never be issued twice.
package user
