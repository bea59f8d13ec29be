package routes

import (
	"log"
	"os"

	_ "gmcl_backoffice/docs" // This will be auto-generated
	"gmcl_backoffice/internal/adapter/http/handlers"
	repository2 "gmcl_backoffice/internal/adapter/persistence/repository"
	"gmcl_backoffice/internal/infrastructure/database"
	"gmcl_backoffice/internal/infrastructure/media"
	"gmcl_backoffice/internal/infrastructure/notification"
	"gmcl_backoffice/internal/usecase"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimationRepo := repository2.NewEstimationDynamoRepository(ddb)
	rendezVousRepo := repository2.NewRendezVousDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	stockRepo := repository2.NewStockDynamoRepository(ddb)
	assignmentRepo := repository2.NewAssignmentDynamoRepository(ddb)
	timeEntryRepo := repository2.NewTimeEntryDynamoRepository(ddb)

	// Notification providers are optional: a missing key or webhook URL
	// leaves the corresponding channel nil and the dispatcher skips it.
	var mailer interfaces.IMailer
	brevoMailer, err := notification.NewBrevoMailer(
		os.Getenv("BREVO_API_KEY"),
		os.Getenv("MAIL_SENDER_NAME"),
		os.Getenv("MAIL_SENDER_EMAIL"),
	)
	if err != nil {
		log.Printf("Mailer not configured: %v", err)
	} else {
		mailer = brevoMailer
	}

	var smsSender interfaces.ISMSSender
	webhookSender, err := notification.NewSMSWebhookSender(os.Getenv("SMS_WEBHOOK_URL"))
	if err != nil {
		log.Printf("SMS sender not configured: %v", err)
	} else {
		smsSender = webhookSender
	}

	dispatcher := usecase.NewDispatcher(mailer, smsSender)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	router.Static("/uploads", uploadDir)
	normalizer := media.NewImageNormalizer(uploadDir)

	estimationUseCase := usecase.NewEstimationUseCase(estimationRepo, employeeRepo, normalizer, dispatcher)
	rendezVousUseCase := usecase.NewRendezVousUseCase(rendezVousRepo, employeeRepo, dispatcher)
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo)
	stockUseCase := usecase.NewStockUseCase(stockRepo, assignmentRepo)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo)
	timeEntryUseCase := usecase.NewTimeEntryUseCase(timeEntryRepo)

	estimationHandler := handlers.NewEstimationHandler(estimationUseCase, uploadDir)
	rendezVousHandler := handlers.NewRendezVousHandler(rendezVousUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	stockHandler := handlers.NewStockHandler(stockUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase)
	timeEntryHandler := handlers.NewTimeEntryHandler(timeEntryUseCase)

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addEstimationRoutes(api, estimationHandler)
	addRendezVousRoutes(api, rendezVousHandler)
	addBackofficeRoutes(api, employeeHandler, stockHandler, assignmentHandler, timeEntryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
}

// corsMiddleware lets the dashboard front-end call the API from another
// origin. CORS_ORIGIN narrows it; the default is wide open.
func corsMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
