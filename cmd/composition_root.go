package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	configs    Config
	uowFactory ports.UnitOfWorkFactory
	logger     *slog.Logger
	clock      commands.Clock
}

func NewCompositionRoot(configs Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		uowFactory: uowFactory,
		logger:     logger,
		clock:      time.Now,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAssignMasterCommandHandler() commands.AssignMasterCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignMasterCommandHandler(f, services.NewMasterDispatcher(), c.clock)
}

func (c *CompositionRoot) CreateAssignPendingOrderCommandHandler() commands.AssignPendingOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPendingOrderCommandHandler(f, services.NewMasterDispatcher(), c.clock)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAttachAdlCommandHandler() commands.AttachAdlCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachAdlCommandHandler(f, c.clock, c.configs.AdlClockSkew)
}

func (c *CompositionRoot) CreateCreateMasterCommandHandler() commands.CreateMasterCommandHandler {
	var f commands.MasterUoWFactory = FuncMasterUoWFactory(func() commands.MasterUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMasterCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateListMastersQueryHandler() queries.ListMastersQueryHandler {
	return queries.NewListMastersQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		AssignMaster: c.CreateAssignMasterCommandHandler(),
		ChangeStatus: c.CreateChangeStatusCommandHandler(),
		AttachAdl:    c.CreateAttachAdlCommandHandler(),
		CreateMaster: c.CreateCreateMasterCommandHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		ListMasters:  c.CreateListMastersQueryHandler(),
	}, c.logger)
}

// CreateEcho returns the fully wired HTTP handler.
func (c *CompositionRoot) CreateEcho(ctx context.Context) (*echo.Echo, error) {
	return httpin.NewEcho(ctx, c.CreateHTTPServer(), c.logger, httpin.Options{
		CORSOrigins: c.configs.CORSOrigins,
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateAssignPendingOrderCommandHandler(), c.configs.AutoAssignSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncMasterUoWFactory func() commands.MasterUoW

func (f FuncMasterUoWFactory) Create() commands.MasterUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
