package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	baseController
}

type sendMessageRequest struct {
	Message    string `json:"message" form:"message" binding:"required"`
	ReceiverID string `json:"receiverId" form:"receiverId" binding:"required"`
}

// Send posts a message on a workshop conversation. Messages always start
// unread for the receiver.
func (cc ChatController) Send(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	workshopId := ctx.Param("workshopId")

	var body sendMessageRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid message data", err, nil)
		return
	}

	if _, err := cc.app.Repository.Workshop.GetById(ctx, nil, workshopId); err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "Workshop not found", err, nil)
		return
	}

	message, err := cc.app.Repository.Chat.Send(ctx, nil, &model.ChatMessage{
		Message:    body.Message,
		SenderID:   authUser.ID,
		ReceiverID: body.ReceiverID,
		WorkshopID: workshopId,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to send message", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"message": message,
	})
}

// Conversation returns the thread between the authenticated user and another
// user on one workshop, oldest first.
func (cc ChatController) Conversation(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	workshopId := ctx.Param("workshopId")
	otherUserId := ctx.Param("userId")

	messages, err := cc.app.Repository.Chat.Conversation(ctx, nil, workshopId, authUser.ID, otherUserId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to load conversation", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"messages": messages,
	})
}

func (cc ChatController) MarkRead(ctx *gin.Context) {
	messageId := ctx.Param("messageId")

	if err := cc.app.Repository.Chat.MarkRead(ctx, nil, messageId); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to mark message read", err, nil)
		return
	}

	util.ResponseSuccess(ctx, nil)
}

func (cc ChatController) UnreadCount(ctx *gin.Context) {
	authUser, err := cc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	count, err := cc.app.Repository.Chat.UnreadCount(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to count unread messages", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"unread": count,
	})
}
