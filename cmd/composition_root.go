package cmd

import (
	"log/slog"

	"pizzeria/internal/adapters/out/notify"
	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
	}
}

func (c *CompositionRoot) uowFactoryAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateFinishPreparationCommandHandler() commands.FinishPreparationCommandHandler {
	return commands.NewFinishPreparationCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateWithdrawOrderCommandHandler() commands.WithdrawOrderCommandHandler {
	return commands.NewWithdrawOrderCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateRequestAffiliationCommandHandler() commands.RequestAffiliationCommandHandler {
	return commands.NewRequestAffiliationCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateUpdateAffiliationStatusCommandHandler() commands.UpdateAffiliationStatusCommandHandler {
	return commands.NewUpdateAffiliationStatusCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateUpdateAvailabilityCommandHandler() commands.UpdateAvailabilityCommandHandler {
	return commands.NewUpdateAvailabilityCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateExpressInterestCommandHandler() commands.ExpressInterestCommandHandler {
	return commands.NewExpressInterestCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateRemoveInterestCommandHandler() commands.RemoveInterestCommandHandler {
	return commands.NewRemoveInterestCommandHandler(c.uowFactoryAdapter())
}

func (c *CompositionRoot) CreateUpdateFlavorAvailabilityCommandHandler() commands.UpdateFlavorAvailabilityCommandHandler {
	return commands.NewUpdateFlavorAvailabilityCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateAssignReadyOrdersCommandHandler() commands.AssignReadyOrdersCommandHandler {
	return commands.NewAssignReadyOrdersCommandHandler(c.uowFactoryAdapter(), c.notifier)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
