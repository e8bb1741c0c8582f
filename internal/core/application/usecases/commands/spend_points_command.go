package commands

import (
	"errors"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/pkg/guard"
)

var (
	ErrSpendPointsCommandIsNotConstructed = errors.New(
		"SpendPointsCommand must be created via NewSpendPointsCommand constructor",
	)
	ErrPointsAreInvalid = errors.New("points must be greater than 0")
)

// SpendPointsCommand represents a request to redeem loyalty points.
type SpendPointsCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	points int64

	guard guard.ConstructorGuard
}

// NewSpendPointsCommand creates a points redemption command.
func NewSpendPointsCommand(userID kernel.UUID, points int64) (SpendPointsCommand, error) {
	cmd := SpendPointsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPoints(points),
	); err != nil {
		return SpendPointsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SpendPointsCommand) Validate() error {
	return c.guard.Validate(ErrSpendPointsCommandIsNotConstructed)
}

func (c SpendPointsCommand) UserID() kernel.UUID { return c.userID }
func (c SpendPointsCommand) Points() int64       { return c.points }

func (c *SpendPointsCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *SpendPointsCommand) setPoints(points int64) error {
	if points <= 0 {
		return ErrPointsAreInvalid
	}
	c.points = points
	return nil
}
