package bootstrap

import (
	"context"
	"log"

	"ai-compliance-be/internal/config"
	"ai-compliance-be/internal/controller"
	"ai-compliance-be/internal/pkg/logger"
	"ai-compliance-be/internal/pkg/mailer"
	"ai-compliance-be/internal/repository/memory"
	"ai-compliance-be/internal/repository/unitofwork"
	"ai-compliance-be/internal/service"
	"ai-compliance-be/pkg/assessment"
	"ai-compliance-be/pkg/docproc"
	"ai-compliance-be/pkg/events"
	"ai-compliance-be/pkg/extraction"
	"ai-compliance-be/pkg/llm/factory"
	"ai-compliance-be/pkg/lock"

	pktNats "ai-compliance-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	JurisdictionController controller.IJurisdictionController
	DocumentController     controller.IDocumentController
	AssessmentController   controller.IAssessmentController
	TaskController         controller.ITaskController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// System Logger (Exposed for main.go to Sync on shutdown)
	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis: backs the jurisdiction catalog lease. Without it the
	// in-process locker still serializes writes within this instance.
	var locker lock.Locker
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to local locks", err)
		locker = lock.NewLocalLocker()
	} else {
		locker = lock.NewRedisLocker(rdb)
	}

	// 3. Pipeline Components
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.BaseURL,
		cfg.Ai.APIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	if llmProvider == nil {
		log.Printf("[WARN] No LLM provider configured: pipeline runs in mock/fallback mode")
	} else {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	docProcessor := docproc.NewProcessor(log.Default())
	extractor := extraction.NewExtractor(
		llmProvider,
		log.Default(),
		cfg.Pipeline.RegulatoryChunkSize,
		cfg.Pipeline.TitleSimilarityThreshold,
		cfg.Pipeline.LLMCallTimeout,
	)
	assessor := assessment.NewAssessor(
		llmProvider,
		log.Default(),
		cfg.Pipeline.EvidenceChunkSize,
		cfg.Pipeline.RequirementBatchSize,
		cfg.Pipeline.LLMCallTimeout,
	)

	catalogCache := memory.NewCatalogCache()

	// Other instances invalidate our cached catalogs via the event bus
	if natsSub != nil {
		err := natsSub.Subscribe("events."+events.TypeCatalogUpdated, "catalog-cache-invalidator",
			func(_ context.Context, event events.Event) error {
				if raw, ok := event.Payload()["jurisdiction_id"].(string); ok {
					if id, err := uuid.Parse(raw); err == nil {
						catalogCache.Invalidate(id)
					}
				}
				return nil
			})
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to catalog events: %v", err)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ProcessTopic, pubSub)

	complianceService := service.NewComplianceService(
		uowFactory,
		extractor,
		docProcessor,
		locker,
		catalogCache,
		natsPub,
		cfg.Pipeline.LockTTL,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ProcessTopic,
		complianceService,
		sysLogger,
	)

	jurisdictionService := service.NewJurisdictionService(uowFactory, catalogCache)
	documentService := service.NewDocumentService(uowFactory, publisherService, cfg.App.UploadDir)
	assessmentService := service.NewAssessmentService(
		uowFactory,
		assessor,
		docProcessor,
		natsPub,
		emailService,
		sysLogger,
	)
	taskService := service.NewTaskService(uowFactory)

	// 5. Controllers
	return &Container{
		JurisdictionController: controller.NewJurisdictionController(jurisdictionService),
		DocumentController:     controller.NewDocumentController(documentService),
		AssessmentController:   controller.NewAssessmentController(assessmentService),
		TaskController:         controller.NewTaskController(taskService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
