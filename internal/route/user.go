package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Users(r *gin.RouterGroup, uc *controller.UserController, nc *controller.NotificationController, cc *controller.ChatController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/me")
	v1.Use(middleware.AuthMiddleware())
	{
		v1.GET("", uc.Me)
		v1.GET("/notifications", nc.List)
		v1.GET("/notifications/unread", nc.UnreadCount)
		v1.PATCH("/notifications/:notificationId/read", nc.MarkRead)
		v1.GET("/messages/unread", cc.UnreadCount)
	}

	users := r.Group("/v1/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/:userId", uc.GetById)
	}
}
