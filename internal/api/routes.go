package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the API routes on the router.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	api := router.Group("/api")
	{
		api.GET("/sample-data", handler.GetSampleData)
		api.POST("/analyze", handler.Analyze)
		api.POST("/export-csv", handler.ExportCSV)
		api.POST("/geojson", handler.ExportGeoJSON)
		api.GET("/trends", handler.GetTrends)
		api.GET("/report", handler.GetReport)
	}
}
