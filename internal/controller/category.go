package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	baseController
}

func (cc CategoryController) Create(ctx *gin.Context) {
	var body model.WorkshopCategory
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid category data", err, nil)
		return
	}

	category, err := cc.app.Repository.WorkshopCategory.Create(ctx, nil, &body)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create category", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"category": category,
	})
}

func (cc CategoryController) List(ctx *gin.Context) {
	categories, err := cc.app.Repository.WorkshopCategory.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list categories", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"categories": categories,
	})
}

func (cc CategoryController) GetById(ctx *gin.Context) {
	categoryId := ctx.Param("categoryId")

	category, err := cc.app.Repository.WorkshopCategory.GetById(ctx, nil, categoryId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Category not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"category": category,
	})
}
