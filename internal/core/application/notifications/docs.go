// Package notifications translates order lifecycle events into chat messages
// for the three surfaces: the customer's private chat, the admin order
// channel, and the assigned courier's chat or channel.
//
// Delivery guarantees differ per surface. Customer messages are one-shot
// sends. The admin channel holds exactly one card per order that is edited in
// place for every status change; the card's message id is captured on first
// send and stored on the order, and edits are skipped (with a log line) when
// no id was captured. Courier messages are sent on assignment, edited when
// the courier accepts and deleted (or edited as fallback) when the courier
// delivers.
//
// Every dispatch is best-effort: a messenger failure is logged and never
// fails the business operation that triggered it. The state change is already
// committed by the time the dispatcher runs.
package notifications
