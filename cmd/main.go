package main

import (
	"log"
	"os"

	"github.com/rnp2860/boleh-makan-vo-sub000/config"
	"github.com/rnp2860/boleh-makan-vo-sub000/controllers"
	"github.com/rnp2860/boleh-makan-vo-sub000/routes"
	"github.com/rnp2860/boleh-makan-vo-sub000/services"
	"github.com/rnp2860/boleh-makan-vo-sub000/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	gemini := services.NewGeminiService()
	resolver := services.NewResolverService(
		services.NewCuratedCatalog(),
		services.NewEdamamService(),
		gemini,
	)
	ledger := services.NewLedgerService(config.DB)
	advisory := services.NewAdvisoryService(gemini)
	pipeline := services.NewAnalyzeService(resolver, ledger, advisory)

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(routes.Controllers{
		Analyze:  controllers.NewAnalyzeController(pipeline),
		Meals:    controllers.NewMealController(services.NewMealService(config.DB)),
		Ledger:   controllers.NewLedgerController(ledger),
		Realtime: controllers.NewRealtimeController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
