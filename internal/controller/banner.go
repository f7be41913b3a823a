package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type BannerController struct {
	baseController
}

func (bc BannerController) Create(ctx *gin.Context) {
	var body model.Banner
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid banner data", err, nil)
		return
	}

	banner, err := bc.app.Repository.Banner.Create(ctx, nil, &body)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create banner", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"banner": banner,
	})
}

// ListActive is public; the homepage shows whatever is flagged active.
func (bc BannerController) ListActive(ctx *gin.Context) {
	banners, err := bc.app.Repository.Banner.ListActive(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list banners", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"banners": banners,
	})
}

type setBannerActiveRequest struct {
	Active bool `json:"active" form:"active"`
}

func (bc BannerController) SetActive(ctx *gin.Context) {
	bannerId := ctx.Param("bannerId")

	var body setBannerActiveRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid banner data", err, nil)
		return
	}

	if err := bc.app.Repository.Banner.SetActive(ctx, nil, bannerId, body.Active); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update banner", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
