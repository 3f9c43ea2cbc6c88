package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/aaronwittchen/Invoicipedia/internal/config"
	"github.com/aaronwittchen/Invoicipedia/internal/models"
	"github.com/aaronwittchen/Invoicipedia/internal/notify"
	"github.com/aaronwittchen/Invoicipedia/internal/payments"
	"github.com/aaronwittchen/Invoicipedia/internal/routes"
	service "github.com/aaronwittchen/Invoicipedia/internal/services/invoicing"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg := config.Load()
	db := config.InitDB(cfg.DBURL)

	db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.CheckoutAttempt{},
	)

	gateway, err := payments.NewStripeGateway(cfg.StripeAPISecret, cfg.StripeProductID)
	if err != nil {
		log.Fatalf("stripe gateway: %v", err)
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, gateway, service.Options{
		Origin:   cfg.AppOrigin,
		Notifier: notify.LogNotifier{},
	})

	r.Run(":" + cfg.Port)
}
