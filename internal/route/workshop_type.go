package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func V1_WorkshopTypes(r *gin.RouterGroup, wtc *controller.WorkshopTypeController, cc *controller.CategoryController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/workshop-types")
	{
		v1.GET("", wtc.List)
		v1.GET("/:workshopTypeId", wtc.GetById)
		v1.GET("/:workshopTypeId/attachments", wtc.ListAttachments)
	}

	admin := r.Group("/v1/workshop-types")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("", wtc.Create)
		admin.PATCH("/:workshopTypeId", wtc.Update)
		admin.POST("/:workshopTypeId/attachments", wtc.UploadAttachment)
	}

	attachments := r.Group("/v1/attachments")
	attachments.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		attachments.DELETE("/:attachmentId", wtc.DeleteAttachment)
	}

	categories := r.Group("/v1/categories")
	{
		categories.GET("", cc.List)
		categories.GET("/:categoryId", cc.GetById)
	}

	categoriesAdmin := r.Group("/v1/categories")
	categoriesAdmin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		categoriesAdmin.POST("", cc.Create)
	}
}
