package controller

import (
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"message": "WorkshopHub api, see /api/v1",
	})
}

func (ic IndexController) Health(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"status": "ok",
	})
}
