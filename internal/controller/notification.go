package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	baseController
}

// List returns the authenticated user's notifications newest first.
func (nc NotificationController) List(ctx *gin.Context) {
	authUser, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	page, pageSize := readPagination(ctx)

	notifications, total, err := nc.app.Repository.Notification.ListForUser(ctx, nil, authUser.ID, page, pageSize)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to list notifications", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"pageSize":      pageSize,
		"totalPage":     util.CalculateTotalPage(total, pageSize),
	})
}

func (nc NotificationController) MarkRead(ctx *gin.Context) {
	notificationId := ctx.Param("notificationId")

	if err := nc.app.Repository.Notification.MarkRead(ctx, nil, notificationId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to mark notification read", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (nc NotificationController) UnreadCount(ctx *gin.Context) {
	authUser, err := nc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	count, err := nc.app.Repository.Notification.UnreadCount(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to count unread notifications", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"unread": count,
	})
}
