package commands

import (
	"errors"

	"agromarket/internal/pkg/guard"
)

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// dispatchBatchSize caps how many outbox rows one dispatch run picks up.
const dispatchBatchSize = 50

// DispatchNotificationsCommand triggers one outbox delivery run. The
// dispatcher job issues it on a schedule; it carries no parameters.
type DispatchNotificationsCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a dispatch trigger.
func NewDispatchNotificationsCommand() DispatchNotificationsCommand {
	return DispatchNotificationsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}
