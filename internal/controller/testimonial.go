package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type TestimonialController struct {
	baseController
}

func (tc TestimonialController) Create(ctx *gin.Context) {
	var body model.Testimonial
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid testimonial data", err, nil)
		return
	}

	testimonial, err := tc.app.Repository.Testimonial.Create(ctx, nil, &body)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create testimonial", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"testimonial": testimonial,
	})
}

func (tc TestimonialController) List(ctx *gin.Context) {
	testimonials, err := tc.app.Repository.Testimonial.List(ctx, nil)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list testimonials", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"testimonials": testimonials,
	})
}

func (tc TestimonialController) Delete(ctx *gin.Context) {
	testimonialId := ctx.Param("testimonialId")

	if err := tc.app.Repository.Testimonial.Delete(ctx, nil, testimonialId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete testimonial", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}
