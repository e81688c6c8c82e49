package bootstrap

import (
	"context"
	"fmt"
	"log"

	"ai-counsellor-be/internal/config"
	"ai-counsellor-be/internal/controller"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/pkg/turnlock"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/repository/unitofwork"
	"ai-counsellor-be/internal/service"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/notify"
	"ai-counsellor-be/pkg/advising/prompt"
	"ai-counsellor-be/pkg/advising/proposal"
	"ai-counsellor-be/pkg/advising/recommend"
	"ai-counsellor-be/pkg/database"
	"ai-counsellor-be/pkg/llm/factory"

	pktNats "ai-counsellor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	CounsellorController controller.ICounsellorController
	DashboardController  controller.IDashboardController
	ProfileController    controller.IProfileController
	UniversityController controller.IUniversityController
	TaskController       controller.ITaskController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the application. A nil db selects the in-memory store, seeded with
// the built-in catalog.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	c.Logger = sysLogger
	c.closers = append(c.closers, func() { _ = sysLogger.Sync() })

	var uowFactory unitofwork.RepositoryFactory
	if db != nil {
		uowFactory = unitofwork.NewRepositoryFactory(db)
	} else {
		uowFactory = memory.NewRepositoryFactory(memory.NewStore())
		if _, err := database.SeedCatalog(ctx, uowFactory, database.DefaultCatalog()); err != nil {
			return nil, fmt.Errorf("seed in-memory catalog: %w", err)
		}
		log.Println("[INFO] Using in-memory store")
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	// NATS
	var sink notify.EventSink
	if cfg.Nats.URL != "" {
		natsPub, err := pktNats.NewPublisher(ctx, cfg.Nats.URL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}
	events := notify.NewPublisher(sink, sysLogger)

	// Redis
	var locker turnlock.Locker = turnlock.NewLocal()
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.Redis.URL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v (turn lock stays in-process)", err)
			_ = rdb.Close()
		} else {
			locker = turnlock.NewRedis(rdb, cfg.Redis.TurnLockTTL)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	// LLM
	llmProvider, err := factory.NewLLMProvider(ctx, factory.Config{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
		GeminiAPIKey:  cfg.Ai.GeminiAPIKey,
		GeminiModel:   cfg.Ai.GeminiModel,
		GroqAPIKey:    cfg.Ai.GroqAPIKey,
		GroqModel:     cfg.Ai.GroqModel,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Ai.LLMProvider)

	// 4. Advising core
	catalog := memory.NewCatalogCache(cfg.Advising.CatalogCacheTTL)
	scorer := recommend.NewScorer()
	exec := executor.New(uowFactory, events, sysLogger)
	proposer := proposal.NewLLMProposer(llmProvider, prompt.NewBuilder(cfg.Advising.MaxActionsPerTurn))

	// 5. Services
	auditPublisher := service.NewPublisherService(cfg.Advising.AuditTopic, pubSub)
	counsellorService := service.NewCounsellorService(
		uowFactory,
		proposer,
		exec,
		locker,
		catalog,
		scorer,
		auditPublisher,
		events,
		sysLogger,
		cfg.Advising,
	)
	dashboardService := service.NewDashboardService(uowFactory)
	profileService := service.NewProfileService(uowFactory, sysLogger)
	universityService := service.NewUniversityService(uowFactory, catalog, scorer, exec)
	taskService := service.NewTaskService(uowFactory, exec, events, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.Advising.AuditTopic, uowFactory, sysLogger)

	// 6. Controllers
	c.CounsellorController = controller.NewCounsellorController(counsellorService)
	c.DashboardController = controller.NewDashboardController(dashboardService)
	c.ProfileController = controller.NewProfileController(profileService)
	c.UniversityController = controller.NewUniversityController(universityService)
	c.TaskController = controller.NewTaskController(taskService)

	return c, nil
}

// Close releases infrastructure in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
