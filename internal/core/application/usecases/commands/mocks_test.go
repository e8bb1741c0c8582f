package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/forum"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/core/domain/model/message"
	"agromarket/internal/core/domain/model/notification"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockListingRepository struct{ mock.Mock }

func (m *MockListingRepository) Add(ctx context.Context, aggregate *listing.Listing) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockListingRepository) Update(ctx context.Context, aggregate *listing.Listing) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockListingRepository) Get(ctx context.Context, id kernel.UUID) (*listing.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.Listing), args.Error(1)
}

func (m *MockListingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockListingRepository) Reserve(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockListingRepository) Release(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockListingRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockMessageRepository struct{ mock.Mock }

func (m *MockMessageRepository) Add(ctx context.Context, aggregate *message.Message) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMessageRepository) Get(_ context.Context, _ kernel.UUID) (*message.Message, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMessageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMessageRepository) GetConversation(ctx context.Context, id string) (*message.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*message.Conversation), args.Error(1)
}

func (m *MockMessageRepository) UpsertConversation(ctx context.Context, aggregate *message.Conversation) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMessageRepository) MarkConversationRead(
	ctx context.Context, conversationID string, readerID kernel.UUID,
) error {
	args := m.Called(ctx, conversationID, readerID)
	return args.Error(0)
}

type MockLoyaltyRepository struct{ mock.Mock }

func (m *MockLoyaltyRepository) Get(ctx context.Context, userID kernel.UUID) (*loyalty.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*loyalty.Account), args.Error(1)
}

func (m *MockLoyaltyRepository) Upsert(ctx context.Context, aggregate *loyalty.Account) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockForumRepository struct{ mock.Mock }

func (m *MockForumRepository) AddPost(ctx context.Context, aggregate *forum.Post) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockForumRepository) UpdatePost(ctx context.Context, aggregate *forum.Post) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockForumRepository) GetPost(ctx context.Context, id kernel.UUID) (*forum.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*forum.Post), args.Error(1)
}

func (m *MockForumRepository) DeletePost(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockForumRepository) AddComment(ctx context.Context, aggregate *forum.Comment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockForumRepository) ToggleLike(ctx context.Context, postID, userID kernel.UUID) (bool, error) {
	args := m.Called(ctx, postID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockForumRepository) IncrementViews(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, aggregate *notification.Notification) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockNotificationRepository) GetDue(
	ctx context.Context, now time.Time, limit int,
) ([]*notification.Notification, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*notification.Notification), args.Error(1)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) Send(ctx context.Context, toEmail, toName, subject, body string) error {
	args := m.Called(ctx, toEmail, toName, subject, body)
	return args.Error(0)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) ListingRepository() ports.ListingRepository {
	args := m.Called()
	return args.Get(0).(ports.ListingRepository)
}

func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockOrderUoW) LoyaltyRepository() ports.LoyaltyRepository {
	args := m.Called()
	return args.Get(0).(ports.LoyaltyRepository)
}

func (m *MockOrderUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockMessageUoW struct{ mock.Mock }

func (m *MockMessageUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMessageUoW) MessageRepository() ports.MessageRepository {
	args := m.Called()
	return args.Get(0).(ports.MessageRepository)
}

type MockMessageUoWFactory struct{ mock.Mock }

func (m *MockMessageUoWFactory) Create() commands.MessageUoW {
	args := m.Called()
	return args.Get(0).(commands.MessageUoW)
}

type MockLoyaltyUoW struct{ mock.Mock }

func (m *MockLoyaltyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoyaltyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoyaltyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoyaltyUoW) LoyaltyRepository() ports.LoyaltyRepository {
	args := m.Called()
	return args.Get(0).(ports.LoyaltyRepository)
}

type MockLoyaltyUoWFactory struct{ mock.Mock }

func (m *MockLoyaltyUoWFactory) Create() commands.LoyaltyUoW {
	args := m.Called()
	return args.Get(0).(commands.LoyaltyUoW)
}

type MockForumUoW struct{ mock.Mock }

func (m *MockForumUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockForumUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockForumUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockForumUoW) ForumRepository() ports.ForumRepository {
	args := m.Called()
	return args.Get(0).(ports.ForumRepository)
}

func (m *MockForumUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockNotificationUoW struct{ mock.Mock }

func (m *MockNotificationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockForumUoWFactory struct{ mock.Mock }

func (m *MockForumUoWFactory) Create() commands.ForumUoW {
	args := m.Called()
	return args.Get(0).(commands.ForumUoW)
}

func mustQuantity(t *testing.T, value float64) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return q
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func newTestUser(t *testing.T, id kernel.UUID, email string, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(
		id, email, "Test User", "+2348000000000", "hash", role,
		kernel.Location{State: "Kano", LGA: "Tarauni", Address: "5 Market Rd"},
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return u
}

func newTestListing(t *testing.T, id, farmerID kernel.UUID, qty float64) *listing.Listing {
	t.Helper()
	l, err := listing.NewListing(
		id, farmerID, "Fresh Tomatoes", "Vine ripened", "tomatoes",
		mustMoney(t, 500), mustQuantity(t, qty), "kg",
		kernel.Location{State: "Kano", LGA: "Tarauni", Address: "5 Market Rd"},
		nil,
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return l
}

func newTestOrder(t *testing.T, id, listingID, buyerID, farmerID kernel.UUID, qty float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		id, listingID, buyerID, farmerID,
		"Fresh Tomatoes", mustQuantity(t, qty), mustMoney(t, 500),
		"Amina", "+2348011111111", "Musa", "+2348022222222", "12 Airport Rd",
		time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}
