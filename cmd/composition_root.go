package cmd

import (
	"log/slog"

	httpadapter "selfstorage/internal/adapters/in/http"
	"selfstorage/internal/adapters/out/postgres"
	"selfstorage/internal/core/application/usecases/commands"
	"selfstorage/internal/core/application/usecases/queries"
	"selfstorage/internal/core/domain/model/tariff"
	"selfstorage/internal/core/ports"
	"selfstorage/internal/jobs"
	"selfstorage/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	rates      tariff.RateTable
	clock      clock.Clock
	notifier   ports.Notifier
	sweepLock  ports.SweepLock
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. sweepLock may be nil for a single replica.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	rates tariff.RateTable,
	notifier ports.Notifier,
	sweepLock ports.SweepLock,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		rates:      rates,
		clock:      clock.System{},
		notifier:   notifier,
		sweepLock:  sweepLock,
		logger:     logger,
	}
}

func (c *CompositionRoot) reservationUoWFactory() commands.ReservationUoWFactory {
	return FuncReservationUoWFactory(func() commands.ReservationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateWarehouseCommandHandler() *commands.CreateWarehouseCommandHandler {
	h := commands.NewCreateWarehouseCommandHandler(c.warehouseUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateProvisionWarehouseCommandHandler() *commands.ProvisionWarehouseCommandHandler {
	h := commands.NewProvisionWarehouseCommandHandler(c.warehouseUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.reservationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateReserveUnitCommandHandler() *commands.ReserveUnitCommandHandler {
	h := commands.NewReserveUnitCommandHandler(c.reservationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() *commands.CompleteOrderCommandHandler {
	h := commands.NewCompleteOrderCommandHandler(c.reservationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReleaseUnitCommandHandler() *commands.ReleaseUnitCommandHandler {
	h := commands.NewReleaseUnitCommandHandler(c.reservationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() *commands.DeleteUserCommandHandler {
	h := commands.NewDeleteUserCommandHandler(c.reservationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSweepOrdersCommandHandler() *commands.SweepOrdersCommandHandler {
	h := commands.NewSweepOrdersCommandHandler(c.reservationUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB, c.rates, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.rates, c.clock)
}

func (c *CompositionRoot) CreateGetTariffsQueryHandler() queries.GetTariffsQueryHandler {
	return queries.NewGetTariffsQueryHandler(c.gormDB, c.rates)
}

func (c *CompositionRoot) CreateGetFreeUnitCountsQueryHandler() queries.GetFreeUnitCountsQueryHandler {
	return queries.NewGetFreeUnitCountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateWarehouse:    c.CreateCreateWarehouseCommandHandler(),
		ProvisionWarehouse: c.CreateProvisionWarehouseCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		ReserveUnit:        c.CreateReserveUnitCommandHandler(),
		CompleteOrder:      c.CreateCompleteOrderCommandHandler(),
		ReleaseUnit:        c.CreateReleaseUnitCommandHandler(),
		DeleteUser:         c.CreateDeleteUserCommandHandler(),
		GetUserOrders:      c.CreateGetUserOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetTariffs:         c.CreateGetTariffsQueryHandler(),
		GetFreeUnitCounts:  c.CreateGetFreeUnitCountsQueryHandler(),
	}, c.clock, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepJob := jobs.NewLifecycleSweepJob(
		c.CreateSweepOrdersCommandHandler(),
		c.sweepLock,
		c.config.SweepSchedule,
		c.config.SweepTimeout,
		c.logger,
	)
	return jobs.NewJobManager(sweepJob)
}

type FuncReservationUoWFactory func() commands.ReservationUoW

func (f FuncReservationUoWFactory) Create() commands.ReservationUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}
