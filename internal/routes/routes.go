package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "github.com/aaronwittchen/Invoicipedia/internal/handlers"
	"github.com/aaronwittchen/Invoicipedia/internal/identity"
	"github.com/aaronwittchen/Invoicipedia/internal/payments"
	"github.com/aaronwittchen/Invoicipedia/internal/repository"
	service "github.com/aaronwittchen/Invoicipedia/internal/services/invoicing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, gateway payments.Gateway, opts service.Options) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	attemptRepo := repository.NewCheckoutAttemptRepository(db)

	invoicingService := service.NewService(
		invoiceRepo,
		customerRepo,
		attemptRepo,
		gateway,
		opts,
	)

	invoiceHandler := handler.NewInvoiceHandler(invoicingService)

	r.Use(identity.Middleware())

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoice lifecycle routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id/status", invoiceHandler.UpdateStatus)
		invoices.POST("/:id/delete", invoiceHandler.Delete)
		invoices.POST("/:id/pay", invoiceHandler.Pay)
		invoices.GET("/:id/payments", invoiceHandler.Payments)
	}
}
