package commands

import (
	"errors"
	"strings"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrEmailIsInvalid     = errors.New("email must contain @")
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// RegisterUserCommand represents a request to create a marketplace account.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	name     string
	phone    string
	password string
	role     user.Role
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email, name, phone, password string,
	role user.Role,
	location kernel.Location,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setName(name),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	cmd.phone = phone
	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier of the account to create.
func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }

// Email returns the account's email address, lowercased.
func (c RegisterUserCommand) Email() string { return c.email }

// Name returns the account's display name.
func (c RegisterUserCommand) Name() string { return c.name }

// Phone returns the account's phone number, possibly empty.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string { return c.password }

// Role returns the requested account role.
func (c RegisterUserCommand) Role() user.Role { return c.role }

// Location returns the account's advertised location.
func (c RegisterUserCommand) Location() kernel.Location { return c.location }

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ErrEmailIsInvalid
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
