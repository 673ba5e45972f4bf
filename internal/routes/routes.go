package routes

import (
	"github.com/gin-gonic/gin"

	"estatecrm/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	leadHandler *handlers.LeadHandler,
	propertyHandler *handlers.PropertyHandler,
	clientHandler *handlers.ClientHandler,
	dealHandler *handlers.DealHandler,
	taskHandler *handlers.TaskHandler,
	userHandler *handlers.UserHandler,
	reportHandler *handlers.ReportHandler,
	paymentHandler *handlers.PaymentHandler,
	messageHandler *handlers.MessageHandler,
	documentHandler *handlers.DocumentHandler,
) *gin.Engine {

	// DASHBOARD
	r.GET("/dashboard", reportHandler.Dashboard)

	// LEADS
	leads := r.Group("/leads")
	{
		leads.GET("/", leadHandler.List)
		leads.POST("/", leadHandler.Create)
		leads.GET("/:id", leadHandler.GetByID)
		leads.POST("/:id/assign", leadHandler.Assign)
		leads.POST("/:id/status", leadHandler.UpdateStatus)
	}

	// PROPERTIES
	props := r.Group("/properties")
	{
		props.GET("/", propertyHandler.List)
		props.GET("/:id", propertyHandler.GetByID)
	}

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.GET("/", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.GET("/:id/saved", clientHandler.SavedProperties)
		clients.GET("/:id/matches", clientHandler.Matches)
		clients.POST("/:id/points", clientHandler.AwardPoints)
	}
	r.GET("/loyalty", clientHandler.LoyaltySummary)

	// DEALS / PIPELINE
	deals := r.Group("/deals")
	{
		deals.GET("/", dealHandler.List)
		deals.POST("/", dealHandler.Create)
		deals.GET("/:id", dealHandler.GetByID)
		deals.POST("/:id/stage", dealHandler.MoveStage)
	}
	r.GET("/pipeline", reportHandler.Pipeline)

	// TASKS / CALENDAR
	tasks := r.Group("/tasks")
	{
		tasks.GET("/", taskHandler.List)
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/upcoming", taskHandler.Upcoming)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.POST("/:id/status", taskHandler.ChangeStatus)
	}
	r.GET("/calendar", taskHandler.Calendar)

	// USERS
	users := r.Group("/users")
	{
		users.GET("/", userHandler.List)
		users.GET("/:id", userHandler.GetByID)
	}

	// PAYMENTS
	payments := r.Group("/payments")
	{
		payments.GET("/", paymentHandler.List)
		payments.GET("/stats", paymentHandler.Stats)
		payments.POST("/collect", paymentHandler.Collect)
	}

	// MESSAGES
	messages := r.Group("/messages")
	{
		messages.GET("/", messageHandler.List)
		messages.POST("/send", messageHandler.Send)
	}

	// DOCUMENTS
	docs := r.Group("/documents")
	{
		docs.GET("/", documentHandler.ListTemplates)
		docs.POST("/:id/generate", documentHandler.Generate)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/funnel", reportHandler.Funnel)
		reports.GET("/locations", reportHandler.Locations)
		reports.GET("/agents", reportHandler.Agents)
		reports.GET("/lead-sources", reportHandler.LeadSources)
	}

	return r
}
