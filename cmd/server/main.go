package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"divarlens/server/config"
	"divarlens/server/internal/analysis"
	"divarlens/server/internal/api"
	"divarlens/server/internal/csvio"
	"divarlens/server/internal/geo"
	"divarlens/server/internal/models"
	"divarlens/server/internal/sampledata"
)

const version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	seed := cfg.Sample.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	locations := geo.DefaultTable()
	analyzer := analysis.NewAnalyzer(locations)
	generator := sampledata.NewGenerator(seed, locations, logger)

	// Decode the configured dataset into memory. A malformed file aborts
	// startup with the decode error; the pipeline never runs on partial data.
	var dataset []models.ListingRecord
	if cfg.Data.File != "" {
		dataset, err = csvio.DecodeFile(cfg.Data.File)
		if err != nil {
			logger.WithError(err).Fatal("Failed to load dataset")
		}
		logger.WithFields(logrus.Fields{
			"file":    cfg.Data.File,
			"records": len(dataset),
		}).Info("Loaded dataset")
	}

	handler := api.NewHandler(analyzer, generator, dataset, cfg.Sample.Size, logger)

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	})

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %d", cfg.Server.Port)
	if err := router.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
