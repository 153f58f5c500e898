package commands_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registeredFlavor(t *testing.T, flavorID, establishmentID, customerID kernel.UUID) *flavor.Flavor {
	t.Helper()

	f, err := flavor.RestoreFlavor(
		flavorID, establishmentID, "Margherita", flavor.Savory,
		40.0, 60.0, false, []kernel.UUID{customerID},
	)
	require.NoError(t, err)

	return f
}

func TestRemoveInterestCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	flavorID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	f := registeredFlavor(t, flavorID, kernel.NewUUID(), customerID)

	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Get", ctx, customerID).Return(testCustomer(t, customerID), nil).Once()

	flavorRepo := new(MockFlavorRepository)
	flavorRepo.On("GetForUpdate", ctx, flavorID).Return(f, nil).Once()
	flavorRepo.On("Update", ctx, f).Return(nil).Once()

	uow := uowWithRepos(nil, nil, flavorRepo, customerRepo, nil, nil)
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRemoveInterestCommand(flavorID, customerID, customerCode)
	require.NoError(t, err)

	handler := commands.NewRemoveInterestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, f.Interested())
	flavorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveInterestCommandHandler_Handle_AbsentRegistrationIsNoOp(t *testing.T) {
	ctx := context.Background()
	flavorID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	f := unavailableFlavor(t, flavorID, kernel.NewUUID())

	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Get", ctx, customerID).Return(testCustomer(t, customerID), nil).Once()

	flavorRepo := new(MockFlavorRepository)
	flavorRepo.On("GetForUpdate", ctx, flavorID).Return(f, nil).Once()
	flavorRepo.On("Update", ctx, f).Return(nil).Once()

	uow := uowWithRepos(nil, nil, flavorRepo, customerRepo, nil, nil)
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRemoveInterestCommand(flavorID, customerID, customerCode)
	require.NoError(t, err)

	handler := commands.NewRemoveInterestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, f.Interested())
}

func TestRemoveInterestCommandHandler_Handle_WrongAccessCode(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Get", ctx, customerID).Return(testCustomer(t, customerID), nil).Once()

	uow := uowWithRepos(nil, nil, nil, customerRepo, nil, nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewRemoveInterestCommand(kernel.NewUUID(), customerID, "000000")
	require.NoError(t, err)

	handler := commands.NewRemoveInterestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRemoveInterestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUoWFactory)
	handler := commands.NewRemoveInterestCommandHandler(factory)
	err := handler.Handle(ctx, commands.RemoveInterestCommand{})

	require.ErrorIs(t, err, commands.ErrRemoveInterestCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
