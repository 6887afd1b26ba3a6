package cmd

import (
	"log/slog"

	httpin "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/engine"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	minimum    kernel.Money
	engine     *engine.Engine
	logger     *slog.Logger
}

// NewCompositionRoot wires the engine to the database. cfg must come from
// LoadConfig, which has already validated the minimum tariff.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	minimum, err := cfg.Minimum()
	if err != nil {
		panic(err)
	}

	return CompositionRoot{
		configs:    cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		minimum:    minimum,
		engine:     engine.NewDefault(minimum, services.SystemClock()),
		logger:     logger,
	}
}

func (c *CompositionRoot) uow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCargoRunCommandHandler() commands.CreateCargoRunCommandHandler {
	return commands.NewCreateCargoRunCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateAttachParcelCommandHandler() commands.AttachParcelCommandHandler {
	return commands.NewAttachParcelCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateDetachParcelCommandHandler() commands.DetachParcelCommandHandler {
	return commands.NewDetachParcelCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateChangeRunStatusCommandHandler() commands.ChangeRunStatusCommandHandler {
	return commands.NewChangeRunStatusCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	return commands.NewChangeParcelStatusCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateApplyBulkStatusCommandHandler() commands.ApplyBulkStatusCommandHandler {
	return commands.NewApplyBulkStatusCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateReconcileRunsCommandHandler() commands.ReconcileRunsCommandHandler {
	return commands.NewReconcileRunsCommandHandler(c.uow(), c.engine)
}

func (c *CompositionRoot) CreateQuoteTariffQueryHandler() queries.QuoteTariffQueryHandler {
	return queries.NewQuoteTariffQueryHandler(services.NewTariffCalculator(c.minimum))
}

func (c *CompositionRoot) CreateCheckTransitionQueryHandler() queries.CheckTransitionQueryHandler {
	return queries.NewCheckTransitionQueryHandler(services.NewTransitionValidator())
}

func (c *CompositionRoot) CreateGetRunLoadQueryHandler() queries.GetRunLoadQueryHandler {
	return queries.NewGetRunLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateRun:          c.CreateCreateCargoRunCommandHandler(),
		CreateParcel:       c.CreateCreateParcelCommandHandler(),
		AttachParcel:       c.CreateAttachParcelCommandHandler(),
		DetachParcel:       c.CreateDetachParcelCommandHandler(),
		ChangeRunStatus:    c.CreateChangeRunStatusCommandHandler(),
		ChangeParcelStatus: c.CreateChangeParcelStatusCommandHandler(),
		ApplyBulkStatus:    c.CreateApplyBulkStatusCommandHandler(),
		ReconcileRuns:      c.CreateReconcileRunsCommandHandler(),
		QuoteTariff:        c.CreateQuoteTariffQueryHandler(),
		CheckTransition:    c.CreateCheckTransitionQueryHandler(),
		GetRunLoad:         c.CreateGetRunLoadQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateReconcileRunsCommandHandler(), c.configs.ReconcileSchedule, c.logger)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
