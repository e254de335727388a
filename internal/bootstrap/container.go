package bootstrap

import (
	"context"
	"log"
	"time"

	"chitty-gateway/internal/config"
	"chitty-gateway/internal/controller"
	"chitty-gateway/internal/gateway"
	"chitty-gateway/internal/pkg/logger"
	"chitty-gateway/internal/repository/contract"
	"chitty-gateway/internal/repository/implementation"
	"chitty-gateway/internal/repository/remote"
	"chitty-gateway/internal/repository/storage"
	"chitty-gateway/internal/service"

	pktNats "chitty-gateway/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const (
	QueueModeNats      = "nats"
	QueueModeInProcess = "in-process"
)

type Container struct {
	Logger  logger.ILogger
	Storage *storage.Storage
	Router  *gateway.Router

	SessionController controller.ISessionController
	MobileController  controller.IMobileController
	RecordController  controller.IRecordController
	HealthController  controller.IHealthController

	// Exposed for cmd/seed
	RecordService service.IRecordService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func()
}

// NewContainer wires every component. db is nil when no relational store is
// configured; Redis and NATS are optional through cfg.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	jobLogger := logger.NewIsolatedLogger(cfg.App.JobLogFilePath)
	return NewContainerWithLoggers(db, cfg, sysLogger, jobLogger)
}

// NewContainerWithLoggers is NewContainer with caller-supplied loggers.
func NewContainerWithLoggers(db *gorm.DB, cfg *config.Config, sysLogger, jobLogger logger.ILogger) *Container {
	c := &Container{Logger: sysLogger}

	// 1. Storage
	var backend contract.RemoteBackend
	if cfg.Storage.RedisURL != "" {
		ttl := time.Duration(cfg.Storage.TTLSeconds) * time.Second
		redisStore := remote.NewRedisStore(remote.NewRedisClient(cfg.Storage.RedisURL), ttl)
		if err := redisStore.Ping(context.Background()); err != nil {
			// Still remote-only: requests fail until Redis is reachable.
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		backend = redisStore
		c.closers = append(c.closers, func() { _ = redisStore.Close() })
	}
	c.Storage = storage.New(backend, sysLogger)
	log.Printf("[INFO] Key/value storage mode: %s", c.Storage.Mode())

	sessionRepo := implementation.NewSessionRepository(c.Storage)
	handoffRepo := implementation.NewHandoffRepository(c.Storage)
	quickStartRepo := implementation.NewQuickStartRepository(c.Storage)
	recordRepo := implementation.NewRecordRepository(c.Storage)

	var recordIndex contract.RecordIndexRepository
	if db != nil {
		recordIndex = implementation.NewRecordIndexRepository(db)
	}

	// 2. Job queue
	queueMode := QueueModeInProcess
	var publisherService service.IPublisherService
	var natsSub *pktNats.Subscriber

	if cfg.Queue.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.Queue.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			natsSub, err = pktNats.NewSubscriber(cfg.Queue.NatsURL)
			if err != nil {
				log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
			}
			publisherService = service.NewNatsPublisherService(natsPub)
			queueMode = QueueModeNats
			c.closers = append(c.closers, natsPub.Close)
			if natsSub != nil {
				c.closers = append(c.closers, natsSub.Close)
			}
		}
	}

	var subscriber message.Subscriber
	if publisherService == nil {
		pubSub := gochannel.NewGoChannel(
			gochannel.Config{},
			watermill.NewStdLogger(false, false),
		)
		publisherService = service.NewPublisherService(cfg.Queue.Topic, pubSub)
		subscriber = pubSub
		c.closers = append(c.closers, func() { _ = pubSub.Close() })
	}
	c.ConsumerService = service.NewConsumerService(subscriber, natsSub, cfg.Queue.Topic, jobLogger)

	// 3. Services
	sessionService := service.NewSessionService(sessionRepo, sysLogger)
	handoffService := service.NewHandoffService(handoffRepo, cfg.App.BaseURL, sysLogger)
	continuityService := service.NewContinuityService(sessionRepo, handoffRepo, quickStartRepo, sysLogger)
	c.RecordService = service.NewRecordService(recordRepo, recordIndex, publisherService, sysLogger)

	// 4. Controllers
	c.SessionController = controller.NewSessionController(sessionService, handoffService, cfg.App.ServiceName, c.Storage.Mode())
	c.MobileController = controller.NewMobileController(handoffService, continuityService, cfg.App.ServiceName, cfg.App.Version, c.Storage.Mode())
	c.RecordController = controller.NewRecordController(c.RecordService)
	c.HealthController = controller.NewHealthController(controller.HealthInfo{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		StorageMode: c.Storage.Mode(),
		QueueMode:   queueMode,
	}, c.Storage, db)

	// 5. Gateway
	c.Router = gateway.NewRouter(cfg.App.ServiceName)
	c.SessionController.RegisterRoutes(c.Router)
	c.MobileController.RegisterRoutes(c.Router)
	c.RecordController.RegisterRoutes(c.Router)
	c.HealthController.RegisterRoutes(c.Router)

	return c
}

// Close releases queue and storage connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
