package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/agritrack/agritrack-server/internal/config"
	"github.com/agritrack/agritrack-server/internal/database"
	"github.com/agritrack/agritrack-server/internal/handlers"
	"github.com/agritrack/agritrack-server/internal/services"
	"github.com/agritrack/agritrack-server/internal/store"

	_ "github.com/agritrack/agritrack-server/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AgriTrack HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	gateway := store.NewGateway(db)
	harvestService := services.NewHarvestService(gateway)
	reportService := services.NewReportService(gateway, cfg.Report.IdleGrace)
	rosterService := services.NewRosterService(gateway)
	defer reportService.CloseAll()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	listCell := harvestService.Watch(ctx)

	harvestHandler := handlers.NewHarvestHandler(harvestService, reportService, listCell)
	recordHandler := handlers.NewRecordHandler(reportService)
	reportHandler := handlers.NewReportHandler(reportService)
	rosterHandler := handlers.NewRosterHandler(rosterService)

	router := gin.Default()

	api := router.Group("/api/v1")
	{
		api.GET("/harvests", harvestHandler.List)
		api.POST("/harvests", harvestHandler.Create)
		api.GET("/harvests/stream", harvestHandler.Stream)
		api.DELETE("/harvests/:id", harvestHandler.Delete)

		api.PUT("/harvests/:id/workers", rosterHandler.UpdateWorkers)

		api.GET("/harvests/:id/report", reportHandler.Get)
		api.PUT("/harvests/:id/report/date", reportHandler.SelectDate)
		api.GET("/harvests/:id/report/stream", reportHandler.Stream)

		api.POST("/harvests/:id/records", recordHandler.Add)
		api.DELETE("/records/:id", recordHandler.Delete)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Starting AgriTrack server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed:", err)
	}
}
