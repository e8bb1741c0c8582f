package commands_test

import (
	"testing"
	"time"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/loyalty"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSpendPointsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewSpendPointsCommand(userID, 50)

	account, err := loyalty.RestoreAccount(userID, 120, 600, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	repo := new(MockLoyaltyRepository)
	uow := new(MockLoyaltyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoyaltyRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).Return(account, nil).Once(),
		repo.On("Upsert", ctx, account).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSpendPointsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(70), account.Points())
	assert.Equal(t, int64(600), account.TotalEarned())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSpendPointsCommandHandler_Handle_Overdraft(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewSpendPointsCommand(userID, 500)

	account, err := loyalty.RestoreAccount(userID, 120, 600, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	repo := new(MockLoyaltyRepository)
	uow := new(MockLoyaltyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoyaltyRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).Return(account, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSpendPointsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Equal(t, int64(120), account.Points())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSpendPointsCommandHandler_Handle_NoAccount(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, _ := commands.NewSpendPointsCommand(userID, 50)

	repo := new(MockLoyaltyRepository)
	uow := new(MockLoyaltyUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoyaltyRepository").Return(repo).Once(),
		repo.On("Get", ctx, userID).Return(nil, errs.NewObjectNotFoundError("account", userID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLoyaltyUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSpendPointsCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
