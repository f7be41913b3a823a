package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// V1_Public wires the unauthenticated homepage content: testimonials and
// active banners.
func V1_Public(r *gin.RouterGroup, tc *controller.TestimonialController, bc *controller.BannerController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1")
	{
		v1.GET("/testimonials", tc.List)
		v1.GET("/banners", bc.ListActive)
	}

	admin := r.Group("/v1")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/testimonials", tc.Create)
		admin.DELETE("/testimonials/:testimonialId", tc.Delete)
		admin.POST("/banners", bc.Create)
		admin.PATCH("/banners/:bannerId/active", bc.SetActive)
	}
}
