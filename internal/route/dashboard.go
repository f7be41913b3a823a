package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Dashboard(r *gin.RouterGroup, dc *controller.DashboardController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/dashboard")
	v1.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		v1.GET("/stats", dc.Stats)
		v1.GET("/tallies", dc.Tallies)
		v1.GET("/entities", dc.Entities)
		v1.GET("/entities/:name", dc.Entity)
	}
}
