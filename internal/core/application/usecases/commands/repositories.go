// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agromarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ListingRepoFactory provides access to the listing repository within a transaction.
	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MessageRepoFactory provides access to the message repository within a transaction.
	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	// LoyaltyRepoFactory provides access to the loyalty repository within a transaction.
	LoyaltyRepoFactory interface {
		LoyaltyRepository() ports.LoyaltyRepository
	}

	// ForumRepoFactory provides access to the forum repository within a transaction.
	ForumRepoFactory interface {
		ForumRepository() ports.ForumRepository
	}

	// NotificationRepoFactory provides access to the outbox repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// UserUoW manages transactions for account-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new account unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// ListingUoW manages transactions for listing-only operations.
	ListingUoW interface {
		TxManager
		ListingRepoFactory
	}

	// ListingUoWFactory creates new listing unit of work instances.
	ListingUoWFactory interface {
		Create() ListingUoW
	}

	// OrderUoW manages transactions for the order workflow. Order state
	// changes touch listings (stock), users (contact snapshots), loyalty
	// (completion rewards) and the outbox, so all of those repositories are
	// reachable from the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
		UserRepoFactory
		LoyaltyRepoFactory
		NotificationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// MessageUoW manages transactions for messaging operations.
	MessageUoW interface {
		TxManager
		MessageRepoFactory
	}

	// MessageUoWFactory creates new messaging unit of work instances.
	MessageUoWFactory interface {
		Create() MessageUoW
	}

	// LoyaltyUoW manages transactions for points operations.
	LoyaltyUoW interface {
		TxManager
		LoyaltyRepoFactory
	}

	// LoyaltyUoWFactory creates new loyalty unit of work instances.
	LoyaltyUoWFactory interface {
		Create() LoyaltyUoW
	}

	// ForumUoW manages transactions for forum operations. Posts snapshot the
	// author name, so the user repository is reachable too.
	ForumUoW interface {
		TxManager
		ForumRepoFactory
		UserRepoFactory
	}

	// ForumUoWFactory creates new forum unit of work instances.
	ForumUoWFactory interface {
		Create() ForumUoW
	}

	// NotificationUoW manages transactions for outbox dispatch bookkeeping.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new outbox unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
