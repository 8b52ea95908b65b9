package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/llm"
	"orderdesk/internal/adapters/out/memory"
	"orderdesk/internal/adapters/out/notification"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/batchrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/adapters/out/redistracker"
	"orderdesk/internal/core/application/agent"
	"orderdesk/internal/core/application/lookup"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/generated/servers"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// llmTimeout bounds one draft request to the language model.
const llmTimeout = 30 * time.Second

// CompositionRoot builds every component of orderdesk from a Config.
// Backends are chosen once at construction; the Create methods only assemble handlers.
type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Recorder

	orders      ports.OrderRepository
	batchReader queries.BatchOrderReader
	uowFactory  ports.UnitOfWorkFactory
	tracker     ports.AttemptTracker
	sweeper     jobs.Sweeper
	notifier    ports.Notifier
	drafts      ports.DraftResponder
	lookup      *lookup.RetryingLookup

	closers []func() error
}

// NewCompositionRoot connects the configured backends. Call Close to release them.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &CompositionRoot{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  metrics.NewRecorder(registry),
	}

	err := errors.Join(
		c.initStores(ctx),
		c.initTracker(ctx),
		c.initNotifier(),
	)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.initDrafts()

	c.lookup, err = lookup.NewRetryingLookup(c.orders, c.tracker, cfg.LookupPolicy(),
		lookup.WithLogger(logger),
		lookup.WithMetrics(c.metrics),
	)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) initStores(ctx context.Context) error {
	if c.cfg.StoreDriver != StorePostgres {
		repo, err := memory.NewSeededOrderRepository()
		if err != nil {
			return err
		}
		store := memory.NewBatchOrderStore()
		c.orders = repo
		c.batchReader = store
		c.uowFactory = memory.NewUnitOfWorkFactory(store)
		return nil
	}

	db, err := postgres.Open(postgres.DSN(c.cfg.DBHost, c.cfg.DBPort, c.cfg.DBUser,
		c.cfg.DBPassword, c.cfg.DBName, c.cfg.DBSslMode))
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to access database pool: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	if err = postgres.Migrate(db); err != nil {
		return err
	}
	seed, err := memory.SeedOrders()
	if err != nil {
		return err
	}
	inserted, err := postgres.SeedOrders(ctx, db, seed)
	if err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "order store ready", "driver", StorePostgres, "seeded", inserted)

	c.orders = orderrepo.NewGormOrderRepository(db)
	c.batchReader = batchrepo.NewGormBatchOrderRepository(db, nil)
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(db)
	return nil
}

func (c *CompositionRoot) initTracker(ctx context.Context) error {
	if c.cfg.AttemptTracker != TrackerRedis {
		t := memory.NewAttemptTracker()
		c.tracker = t
		c.sweeper = t
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.RedisAddr,
		Password: c.cfg.RedisPassword,
	})
	c.closers = append(c.closers, client.Close)

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", c.cfg.RedisAddr, err)
	}
	c.tracker = redistracker.NewAttemptTracker(client, c.cfg.RetryStateTTL)
	return nil
}

func (c *CompositionRoot) initNotifier() error {
	if c.cfg.Notifier != NotifierKafka {
		c.notifier = notification.NewLogNotifier(c.logger, c.cfg.NotifyLatency)
		return nil
	}

	n := notification.NewKafkaNotifier(
		notification.NewKafkaWriter(c.cfg.KafkaBrokers, c.cfg.KafkaNotificationTopic),
		c.logger,
	)
	c.closers = append(c.closers, n.Close)
	c.notifier = n
	return nil
}

func (c *CompositionRoot) initDrafts() {
	if c.cfg.LLMAPIKey == "" {
		c.drafts = llm.NewStaticResponder("")
		return
	}
	c.drafts = llm.NewOpenAIResponder(c.cfg.LLMAPIKey, c.cfg.LLMModel, c.cfg.LLMBaseURL,
		&http.Client{Timeout: llmTimeout})
}

// Close releases the backend connections in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var err error
	for i := len(c.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, c.closers[i]())
	}
	c.closers = nil
	return err
}

// Registry returns the Prometheus registry the components report to.
func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

// Lookup returns the shared retrying order lookup.
func (c *CompositionRoot) Lookup() *lookup.RetryingLookup {
	return c.lookup
}

func (c *CompositionRoot) CreateResolveOrderRequestCommandHandler() (*commands.ResolveOrderRequestCommandHandler, error) {
	h, err := commands.NewResolveOrderRequestCommandHandler(commands.ResolveOrderDependencies{
		Extractor:  services.NewIDExtractor(c.cfg.IDExtractionPolicy, c.cfg.LookupPolicy().FlakyOrderID.String()),
		Lookup:     c.lookup,
		Classifier: memory.NewSimulatedClassifier(order.ID(c.cfg.VipOrderID)),
		Rule:       services.NewPrioritizationRule(),
		Notifier:   c.notifier,
		Logger:     c.logger,
		Metrics:    c.metrics,
	}, commands.ResolveOrderOptions{
		SynthesizeNotFound: c.cfg.SynthesizeNotFound,
	})
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *CompositionRoot) CreateAgent() (*agent.Agent, error) {
	resolver, err := c.CreateResolveOrderRequestCommandHandler()
	if err != nil {
		return nil, err
	}
	return agent.NewAgent(c.drafts, resolver, c.logger)
}

func (c *CompositionRoot) CreateRegisterBatchOrderCommandHandler() *commands.RegisterBatchOrderCommandHandler {
	var f commands.BatchOrderUoWFactory = FuncBatchOrderUoWFactory(func() commands.BatchOrderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRegisterBatchOrderCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.lookup)
}

func (c *CompositionRoot) CreateGetBatchOrderQueryHandler() queries.GetBatchOrderQueryHandler {
	return queries.NewGetBatchOrderQueryHandler(c.batchReader)
}

// CreateRouter assembles the HTTP API.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	a, err := c.CreateAgent()
	if err != nil {
		return nil, err
	}
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	s := httpadapter.NewServer(
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateRegisterBatchOrderCommandHandler(),
		c.CreateGetBatchOrderQueryHandler(),
		a,
		c.logger,
	)
	return httpadapter.NewRouter(s, doc, c.registry, c.logger), nil
}

// CreateJobManager returns the background jobs of the configured backends.
// Only the in-memory tracker needs sweeping.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var js []jobs.Job
	if c.sweeper != nil {
		js = append(js, jobs.NewRetryStateSweepJob(c.sweeper, c.cfg.RetryStateTTL, "", c.logger))
	}
	return jobs.NewJobManager(c.logger, js...)
}

type FuncBatchOrderUoWFactory func() commands.BatchOrderUoW

func (f FuncBatchOrderUoWFactory) Create() commands.BatchOrderUoW {
	return f()
}
