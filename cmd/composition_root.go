package cmd

import (
	"log/slog"

	httpin "fiesta/internal/adapters/in/http"
	"fiesta/internal/adapters/out/postgres"
	"fiesta/internal/adapters/out/postgres/settingsrepo"
	"fiesta/internal/adapters/out/telegram"
	"fiesta/internal/core/application/notifications"
	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/application/usecases/queries"
	"fiesta/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, use cases and jobs together. Everything is
// created from here so the dependency graph stays in one place.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
	settings   *settingsrepo.GormSettingsRepository
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph for the given configuration.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	messenger, err := telegram.NewClient(config.TelegramToken)
	if err != nil {
		return nil, err
	}

	settings := settingsrepo.NewGormSettingsRepository(gormDB)
	provider := settingsrepo.NewProvider(settings, config.ShopChannelID)

	dispatcher, err := notifications.NewDispatcher(messenger, provider, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		settings:   settings,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateCourierAcceptCommandHandler() commands.CourierAcceptCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCourierAcceptCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateCourierDeliverCommandHandler() commands.CourierDeliverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCourierDeliverCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	var f commands.ReferralUoWFactory = FuncReferralUoWFactory(func() commands.ReferralUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterUserCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGrantReferralRewardCommandHandler() commands.GrantReferralRewardCommandHandler {
	var f commands.ReferralUoWFactory = FuncReferralUoWFactory(func() commands.ReferralUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGrantReferralRewardCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateValidatePromoQueryHandler() queries.ValidatePromoQueryHandler {
	return queries.NewValidatePromoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReferralStatsQueryHandler() queries.GetReferralStatsQueryHandler {
	return queries.NewGetReferralStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the REST surface with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateCourierAcceptCommandHandler(),
		c.CreateCourierDeliverCommandHandler(),
		c.CreateSetCourierAvailabilityCommandHandler(),
		c.CreateRegisterUserCommandHandler(),
		c.CreateGrantReferralRewardCommandHandler(),
		c.CreateValidatePromoQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetUserOrdersQueryHandler(),
		c.CreateGetReferralStatsQueryHandler(),
		c.CreateGetStatsQueryHandler(),
		c.settings,
	)
}

// CreateJobManager assembles the background jobs.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	statsHandler := c.CreateGetStatsQueryHandler()
	return jobs.NewJobManager(statsHandler, c.dispatcher, config.DigestSchedule, c.logger)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncReferralUoWFactory func() commands.ReferralUoW

func (f FuncReferralUoWFactory) Create() commands.ReferralUoW {
	return f()
}
