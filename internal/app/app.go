package app

import (
	"fmt"
	"log"

	"estatecrm/internal/config"
	"estatecrm/internal/handlers"
	"estatecrm/internal/middleware"
	"estatecrm/internal/outbox"
	"estatecrm/internal/pdf"
	"estatecrm/internal/repositories"
	"estatecrm/internal/routes"
	"estatecrm/internal/services"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estatecrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === Store ===
	// Everything lives in memory, seeded once per process.
	store := repositories.Seeded()

	// === Repos ===
	userRepo := repositories.NewUserRepository(store)
	leadRepo := repositories.NewLeadRepository(store)
	propRepo := repositories.NewPropertyRepository(store)
	clientRepo := repositories.NewClientRepository(store)
	dealRepo := repositories.NewDealRepository(store)
	taskRepo := repositories.NewTaskRepository(store)
	paymentRepo := repositories.NewPaymentRepository(store)
	messageRepo := repositories.NewMessageRepository(store)
	templateRepo := repositories.NewTemplateRepository(store)

	// === Outbox ===
	// Email goes through SMTP only when configured and dry_run is off;
	// otherwise every action resolves to a logged confirmation.
	var dispatcher outbox.Dispatcher
	if cfg.Email.SMTPHost != "" {
		dispatcher = outbox.NewEmailDispatcher(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
			cfg.Email.DryRun,
		)
	} else {
		dispatcher = outbox.NewLogDispatcher()
	}

	// === Services ===
	leadService := services.NewLeadService(leadRepo, userRepo)
	propService := services.NewPropertyService(propRepo)
	clientService := services.NewClientService(clientRepo, propRepo)
	dealService := services.NewDealService(dealRepo)
	taskService := services.NewTaskService(taskRepo)
	userService := services.NewUserService(userRepo)
	loyaltyService := services.NewLoyaltyService(clientRepo)
	paymentService := services.NewPaymentService(paymentRepo, clientRepo, dispatcher)
	messageService := services.NewMessageService(messageRepo, leadRepo, dispatcher)
	reportService := services.NewReportService(leadRepo, dealRepo, propRepo, userRepo)

	pdfGen := pdf.NewDocumentGenerator()
	documentService := services.NewDocumentService(templateRepo, dealRepo, leadRepo, propRepo, pdfGen, dispatcher)

	// === Handlers ===
	leadHandler := handlers.NewLeadHandler(leadService)
	propertyHandler := handlers.NewPropertyHandler(propService)
	clientHandler := handlers.NewClientHandler(clientService, propService, loyaltyService)
	dealHandler := handlers.NewDealHandler(dealService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)
	reportHandler := handlers.NewReportHandler(reportService, taskService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	messageHandler := handlers.NewMessageHandler(messageService)
	documentHandler := handlers.NewDocumentHandler(documentService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		leadHandler,
		propertyHandler,
		clientHandler,
		dealHandler,
		taskHandler,
		userHandler,
		reportHandler,
		paymentHandler,
		messageHandler,
		documentHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
