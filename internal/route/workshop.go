package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_Workshops(r *gin.RouterGroup, wc *controller.WorkshopController, rc *controller.RatingController, cc *controller.ChatController, cmc *controller.CommentController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/workshops")
	v1.Use(middleware.AuthMiddleware())
	{
		v1.POST("", wc.Create)
		v1.GET("/:workshopId", wc.GetById)

		v1.POST("/:workshopId/ratings", rc.Rate)
		v1.GET("/:workshopId/ratings", rc.ListForWorkshop)

		v1.POST("/:workshopId/messages", cc.Send)
		v1.GET("/:workshopId/messages/:userId", cc.Conversation)

		v1.POST("/:workshopId/comments", cmc.Create)
		v1.GET("/:workshopId/comments", cmc.ListForWorkshop)

		v1.GET("/:workshopId/schedule", wc.GetSchedule)
	}

	admin := r.Group("/v1/workshops")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", wc.List)
		admin.PATCH("/:workshopId/status", wc.SetStatus)
		admin.PATCH("/:workshopId/instructor", wc.AssignInstructor)
		admin.PUT("/:workshopId/schedule", wc.UpsertSchedule)
	}

	// separate prefix: a static "messages" segment cannot share a level with
	// the :workshopId wildcard
	messages := r.Group("/v1/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.PATCH("/:messageId/read", cc.MarkRead)
	}

	me := r.Group("/v1/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/workshops", wc.Mine)
	}
}
