// Package order contains the order aggregate, its status state machine, and
// the stock effects that tie status transitions to listing inventory.
package order
