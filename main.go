package main

import (
	"log"

	"github.com/Akhil-047/PayOrbit/config"
	"github.com/Akhil-047/PayOrbit/controllers"
	"github.com/Akhil-047/PayOrbit/routes"
	"github.com/Akhil-047/PayOrbit/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed the demo merchant
	if err := controllers.CreateTestMerchant(); err != nil {
		utils.LogError("Failed to seed test merchant: %v", err)
		log.Fatal("Failed to seed test merchant:", err)
	}

	// Set up the payment processor and pick up payments a previous run
	// left in processing
	controllers.Processor = controllers.NewPaymentProcessor(cfg)
	if err := controllers.Processor.RequeuePendingPayments(); err != nil {
		utils.LogError("Failed to requeue pending payments: %v", err)
	}

	// Set up router
	router := routes.SetupRouter()

	utils.LogInfo("Payment gateway starting on port %s", cfg.Port)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
