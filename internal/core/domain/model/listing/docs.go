// Package listing contains the produce listing aggregate and its visibility
// state machine.
package listing
