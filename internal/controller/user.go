package controller

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	baseController
}

// Me returns the authenticated user's full record with profile.
func (uc UserController) Me(ctx *gin.Context) {
	authUser, err := uc.getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	user, err := uc.app.Repository.User.GetById(ctx, nil, authUser.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

func (uc UserController) GetById(ctx *gin.Context) {
	userId := ctx.Param("userId")

	user, err := uc.app.Repository.User.GetById(ctx, nil, userId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusNotFound, "User not found", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}
