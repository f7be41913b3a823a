package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/apperror"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type RatingController struct {
	baseController
}

type rateWorkshopRequest struct {
	Rating   int    `json:"rating" form:"rating" binding:"required,gte=1,lte=5"`
	Feedback string `json:"feedback" form:"feedback"`
}

// Rate records the authenticated user's score for a workshop. Ratings are
// immutable; a second attempt for the same workshop is rejected.
func (rc RatingController) Rate(ctx *gin.Context) {
	authUser, err := rc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	workshopId := ctx.Param("workshopId")

	var body rateWorkshopRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid rating data", err, nil)
		return
	}

	workshop, err := rc.app.Repository.Workshop.GetById(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
		return
	}

	rating, err := rc.app.Repository.Rating.Rate(ctx, nil, &model.WorkshopRating{
		Rating:     body.Rating,
		Feedback:   body.Feedback,
		WorkshopID: workshop.ID,
		UserID:     authUser.ID,
	})
	if err != nil {
		if errors.Is(err, apperror.ErrDuplicateRating) {
			util.ResponseFailed(ctx, http.StatusConflict, "You already rated this workshop", err, nil)
			return
		}
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to rate workshop", err, nil)
		return
	}

	rc.notifyCoordinator(ctx, workshop)

	util.ResponseSuccess(ctx, gin.H{
		"rating": rating,
	})
}

func (rc RatingController) notifyCoordinator(ctx *gin.Context, workshop *model.Workshop) {
	title := constant.NotificationRatingReceived.Label()
	message := workshop.WorkshopType.Name + " received a new rating"
	if _, err := rc.app.Repository.Notification.Notify(ctx, nil, workshop.CoordinatorID, constant.NotificationRatingReceived, title, message, &workshop.ID); err != nil {
		rc.app.Logger.Errorf("Failed to notify coordinator %s about rating on %s: %v", workshop.CoordinatorID, workshop.ID, err)
	}
}

// ListForWorkshop returns all ratings plus the running average.
func (rc RatingController) ListForWorkshop(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	ratings, err := rc.app.Repository.Rating.ListForWorkshop(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list ratings", err, nil)
		return
	}

	average, err := rc.app.Repository.Rating.AverageForWorkshop(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to compute average rating", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"ratings": ratings,
		"average": average,
	})
}
