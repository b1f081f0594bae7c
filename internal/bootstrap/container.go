package bootstrap

import (
	"context"
	"log"

	"codementor-be/internal/config"
	"codementor-be/internal/controller"
	"codementor-be/internal/handler"
	"codementor-be/internal/pkg/logger"
	"codementor-be/internal/pkg/mailer"
	"codementor-be/internal/registry"
	"codementor-be/internal/repository/unitofwork"
	"codementor-be/internal/service"
	"codementor-be/internal/websocket"
	"codementor-be/pkg/ai"
	pktNats "codementor-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const persistCodeTopic = "collaboration.persist_code"

type Container struct {
	// Controllers
	AuthController          controller.IAuthController
	CollaborationController controller.ICollaborationController
	GameController          controller.IGameController
	DashboardController     controller.IDashboardController
	RoadmapController       controller.IRoadmapController
	AIController            controller.IAIController
	AdminController         controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Realtime
	CollaborationHandler *handler.CollaborationHandler
	WebSocketHub         *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// In-process event bus for durable code writes
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS for platform events; the app runs without it
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis for leaderboard caching
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	aiClient := ai.NewClient(cfg.Keys.GoogleGemini)

	// Realtime infrastructure
	roomRegistry := registry.NewRegistry()
	wsLogger := logger.NewIsolatedLogger(cfg.App.CollabLogFilePath)
	wsHub := websocket.NewHub(roomRegistry, wsLogger)

	publisherService := service.NewPublisherService(pubSub, persistCodeTopic)
	consumerService := service.NewConsumerService(pubSub, persistCodeTopic, uowFactory, sysLogger)

	collaborationService := service.NewCollaborationService(
		uowFactory,
		wsHub,
		roomRegistry,
		publisherService,
		natsPub,
		wsLogger,
	)
	wsHub.SetHandler(collaborationService)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	gameService := service.NewGameService(uowFactory, aiClient, natsPub, emailService, rdb, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, rdb, sysLogger)
	roadmapService := service.NewRoadmapService(uowFactory, aiClient)
	aiService := service.NewAIService(uowFactory, aiClient, sysLogger)
	adminService := service.NewAdminService(uowFactory)

	collaborationHandler := handler.NewCollaborationHandler(wsHub, wsLogger)

	return &Container{
		AuthController:          controller.NewAuthController(authService),
		CollaborationController: controller.NewCollaborationController(collaborationService),
		GameController:          controller.NewGameController(gameService),
		DashboardController:     controller.NewDashboardController(dashboardService),
		RoadmapController:       controller.NewRoadmapController(roadmapService),
		AIController:            controller.NewAIController(aiService),
		AdminController:         controller.NewAdminController(adminService),

		ConsumerService: consumerService,

		CollaborationHandler: collaborationHandler,
		WebSocketHub:         wsHub,
	}
}
