// FILE: internal/bootstrap/container.go
package bootstrap

import (
	"context"
	"log"
	"time"

	"devagency-be/internal/config"
	"devagency-be/internal/controller"
	"devagency-be/internal/handler"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/pkg/mailer"
	"devagency-be/internal/pkg/storage"
	"devagency-be/internal/repository/implementation"
	"devagency-be/internal/repository/unitofwork"
	"devagency-be/internal/service"
	"devagency-be/internal/websocket"
	"devagency-be/pkg/admin/content"
	"devagency-be/pkg/admin/dashboard"
	adminEvents "devagency-be/pkg/admin/events"
	"devagency-be/pkg/admin/plan"
	"devagency-be/pkg/admin/project"
	"devagency-be/pkg/admin/user"
	"devagency-be/pkg/lifecycle"

	pktNats "devagency-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	PlanController         controller.IPlanController
	ContentController      controller.IContentController
	SubscriptionController controller.ISubscriptionController
	ProjectController      controller.IProjectController
	ComplaintController    controller.IComplaintController
	AdminController        controller.IAdminController

	// Background Services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
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

	publicCache := gocache.New(5*time.Minute, 10*time.Minute)
	receiptStore := storage.NewLocalStore(cfg.App.UploadDir)

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

	// Redis
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

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Domain Components
	engine := lifecycle.NewEngine(sysLogger)

	adminEventPublisher := adminEvents.NewNatsPublisher(natsPub, sysLogger)
	userManager := user.NewManager(sysLogger, adminEventPublisher)
	projectManager := project.NewManager(sysLogger, adminEventPublisher)
	planManager := plan.NewManager(sysLogger, publicCache)
	contentManager := content.NewManager(sysLogger, publicCache)
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Topics.ReceiptEmail, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Topics.ReceiptEmail, emailService, cfg.SMTP.AdminEmail)

	authService := service.NewAuthService(uowFactory, emailService, natsPub)
	planService := service.NewPlanService(uowFactory, publicCache)
	contentService := service.NewContentService(uowFactory, publicCache, adminEventPublisher)
	subscriptionService := service.NewSubscriptionService(
		uowFactory,
		engine,
		receiptStore,
		adminEventPublisher,
		publisherService,
	)
	projectService := service.NewProjectService(uowFactory)
	complaintService := service.NewComplaintService(uowFactory, adminEventPublisher)

	adminService := service.NewAdminService(
		uowFactory,
		engine,
		userManager,
		projectManager,
		planManager,
		contentManager,
		dashboardAggregator,
		adminEventPublisher,
		sysLogger,
	)

	// 4.5 Notification System
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger) // Hub implements NotificationDelivery

	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(notifService, natsPub, wsHub, wsLogger)

	// 5. Controllers
	return &Container{
		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		AuthController:         controller.NewAuthController(authService),
		PlanController:         controller.NewPlanController(planService),
		ContentController:      controller.NewContentController(contentService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		ProjectController:      controller.NewProjectController(projectService),
		ComplaintController:    controller.NewComplaintController(complaintService),
		AdminController:        controller.NewAdminController(adminService),

		ConsumerService: consumerService,
	}
}
