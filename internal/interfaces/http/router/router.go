package router

import (
	"github.com/gin-gonic/gin"

	"shopdata/internal/interfaces/http/handler"
)

func RegisterRoutes(r *gin.Engine, reportHandler *handler.ReportHandler) {
	r.GET("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/reports", reportHandler.ListReports)
		api.GET("/reports/:name", reportHandler.GetReport)
		api.GET("/verify", reportHandler.Verify)
	}
}
