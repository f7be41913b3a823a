package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	baseController
}

type createCommentRequest struct {
	Comment string `json:"comment" form:"comment" binding:"required"`
	Public  *bool  `json:"public" form:"public"`
}

// Create posts a comment on a workshop and tells the coordinator. Comments
// default to public unless the author says otherwise.
func (cc CommentController) Create(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	workshopId := ctx.Param("workshopId")

	var body createCommentRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid comment data", err, nil)
		return
	}

	workshop, err := cc.app.Repository.Workshop.GetById(ctx, nil, workshopId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
		return
	}

	public := true
	if body.Public != nil {
		public = *body.Public
	}

	comment, err := cc.app.Repository.Comment.Create(ctx, nil, &model.Comment{
		Comment:    body.Comment,
		Public:     public,
		AuthorID:   authUser.ID,
		WorkshopID: workshop.ID,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create comment", err, nil)
		return
	}

	if authUser.ID != workshop.CoordinatorID {
		title := constant.NotificationNewComment.Label()
		message := authUser.FirstName + " commented on " + workshop.WorkshopType.Name
		if _, err := cc.app.Repository.Notification.Notify(ctx, nil, workshop.CoordinatorID, constant.NotificationNewComment, title, message, &workshop.ID); err != nil {
			cc.app.Logger.Errorf("Failed to notify coordinator %s about comment on %s: %v", workshop.CoordinatorID, workshop.ID, err)
		}
	}

	util.ResponseSuccess(ctx, gin.H{
		"comment": comment,
	})
}

// ListForWorkshop returns a workshop's comments. Admins also see private
// comments.
func (cc CommentController) ListForWorkshop(ctx *gin.Context) {
	workshopId := ctx.Param("workshopId")

	publicOnly := true
	if authUser, err := cc.getAuthUser(ctx); err == nil && authUser.IsAdmin {
		publicOnly = false
	}

	comments, err := cc.app.Repository.Comment.ListForWorkshop(ctx, nil, workshopId, publicOnly)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list comments", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"comments": comments,
	})
}
