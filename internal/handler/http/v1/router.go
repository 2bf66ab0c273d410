package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Жизненный цикл тревог и назначение подразделений
	alerts := protected.Group("/alerts")
	{
		alerts.POST("", h.createAlert)
		alerts.GET("", h.listAlerts)
		alerts.GET("/:id", h.getAlert)
		alerts.POST("/:id/assign", h.assignAlert)
		alerts.POST("/:id/accept", h.acceptAlert)
		alerts.POST("/:id/resolve", h.resolveAlert)
		alerts.POST("/:id/cancel", h.cancelAlert)
	}

	units := protected.Group("/units")
	{
		units.POST("", h.registerUnit)
		units.PUT("/location", h.updateUnitLocation)
		units.GET("/:id", h.getUnit)
		units.POST("/:id/release", h.releaseUnit)
		units.PUT("/:id/duty", h.setUnitDuty)
	}

	stations := protected.Group("/stations")
	{
		stations.GET("", h.listStations)
		stations.GET("/:id", h.getStation)
	}

	protected.GET("/audit", h.queryAuditLog)
}
