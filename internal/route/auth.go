package route

import (
	"github.com/SeakMengs/WorkshopHub/internal/controller"
	"github.com/gin-gonic/gin"
)

func V1_Auth(r *gin.RouterGroup, authController *controller.AuthController) {
	v1 := r.Group("/v1/auth")
	{
		v1.POST("/register", authController.Register)
		v1.POST("/login", authController.Login)
		v1.POST("/jwt/refresh", authController.RefreshToken)
		v1.GET("/activate/:key", authController.Activate)
	}
}
