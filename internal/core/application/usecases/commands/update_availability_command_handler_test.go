package commands_test

import (
	"context"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvailabilityCommandHandler_Handle_Rest(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	aff := activeAffiliation(t, affiliationID, courierID, kernel.NewUUID())

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(testCourierAccount(t, courierID), nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(aff, nil).Once()
	affiliationRepo.On("Update", ctx, aff).Return(nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Resting)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, affiliation.Resting, aff.Availability())
	// Resting never triggers an assignment round.
	factory.AssertNumberOfCalls(t, "Create", 1)
	uow.AssertExpectations(t)
}

func TestUpdateAvailabilityCommandHandler_Handle_ActivePicksUpWaitingOrder(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	establishmentID := kernel.NewUUID()
	courier := testCourierAccount(t, courierID)

	aff, err := affiliation.RestoreAffiliation(
		affiliationID, courierID, establishmentID,
		affiliation.Approved, affiliation.Resting, nil,
	)
	require.NoError(t, err)

	waitingOrder := readyOrder(t, kernel.NewUUID(), kernel.NewUUID(), establishmentID)

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(aff, nil).Once()
	affiliationRepo.On("Update", ctx, aff).Return(nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	backlogOrderRepo := new(MockOrderRepository)
	backlogOrderRepo.On("GetOldestReadyForEstablishment", ctx, establishmentID).Return(waitingOrder, nil).Once()
	backlogOrderRepo.On("Update", ctx, waitingOrder).Return(nil).Once()

	backlogAffiliationRepo := new(MockAffiliationRepository)
	backlogAffiliationRepo.On("GetOldestActiveForEstablishment", ctx, establishmentID).Return(aff, nil).Once()
	backlogAffiliationRepo.On("Update", ctx, aff).Return(nil).Once()

	backlogCourierRepo := new(MockCourierRepository)
	backlogCourierRepo.On("Get", ctx, courierID).Return(courier, nil).Once()

	backlogUow := uowWithRepos(backlogOrderRepo, backlogAffiliationRepo, nil, nil, nil, backlogCourierRepo)
	backlogUow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(backlogUow).Once()

	notifier := new(MockNotifier)
	notifier.On("OrderDispatched", ctx, waitingOrder, courier).Return(nil).Once()

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Active)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, waitingOrder.Status())
	require.NotNil(t, waitingOrder.Courier())
	assert.Equal(t, courierID, *waitingOrder.Courier())
	assert.Equal(t, affiliation.Delivering, aff.Availability())
	notifier.AssertExpectations(t)
	backlogUow.AssertExpectations(t)
}

func TestUpdateAvailabilityCommandHandler_Handle_ActiveWithEmptyBacklog(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	establishmentID := kernel.NewUUID()

	aff, err := affiliation.RestoreAffiliation(
		affiliationID, courierID, establishmentID,
		affiliation.Approved, affiliation.Resting, nil,
	)
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(testCourierAccount(t, courierID), nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(aff, nil).Once()
	affiliationRepo.On("Update", ctx, aff).Return(nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()

	backlogOrderRepo := new(MockOrderRepository)
	backlogOrderRepo.On("GetOldestReadyForEstablishment", ctx, establishmentID).Return(nil, nil).Once()
	backlogUow := uowWithRepos(backlogOrderRepo, nil, nil, nil, nil, nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	factory.On("Create").Return(backlogUow).Once()

	notifier := new(MockNotifier)

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Active)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, notifier)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, affiliation.Active, aff.Availability())
	notifier.AssertNotCalled(t, "OrderDispatched", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "CouriersUnavailable", mock.Anything, mock.Anything)
}

func TestUpdateAvailabilityCommandHandler_Handle_DeliveringIsRejected(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	aff := activeAffiliation(t, affiliationID, courierID, kernel.NewUUID())

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(testCourierAccount(t, courierID), nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(aff, nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Delivering)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.EqualError(t, err, "invalid operation: Delivering is set by order assignment only")
	assert.Equal(t, affiliation.Active, aff.Availability())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateAvailabilityCommandHandler_Handle_NotApproved(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	pending, err := affiliation.NewAffiliation(affiliationID, courierID, kernel.NewUUID())
	require.NoError(t, err)

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(testCourierAccount(t, courierID), nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(pending, nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Active)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	assert.Equal(t, affiliation.Resting, pending.Availability())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateAvailabilityCommandHandler_Handle_AnotherCouriersAffiliation(t *testing.T) {
	ctx := context.Background()
	affiliationID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	aff := activeAffiliation(t, affiliationID, kernel.NewUUID(), kernel.NewUUID())

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, courierID).Return(testCourierAccount(t, courierID), nil).Once()

	affiliationRepo := new(MockAffiliationRepository)
	affiliationRepo.On("Get", ctx, affiliationID).Return(aff, nil).Once()

	uow := uowWithRepos(nil, affiliationRepo, nil, nil, nil, courierRepo)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewUpdateAvailabilityCommand(
		affiliationID, courierID, courierCode, affiliation.Resting)
	require.NoError(t, err)

	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrUnauthorized)
	assert.Equal(t, affiliation.Active, aff.Availability())
}

func TestUpdateAvailabilityCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()

	factory := new(MockUoWFactory)
	handler := commands.NewUpdateAvailabilityCommandHandler(factory, new(MockNotifier))
	err := handler.Handle(ctx, commands.UpdateAvailabilityCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateAvailabilityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
