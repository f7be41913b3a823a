package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SeakMengs/WorkshopHub/internal/auth"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/mailer"
	"github.com/SeakMengs/WorkshopHub/internal/model"
	"github.com/SeakMengs/WorkshopHub/internal/queue"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	baseController
}

const ACTIVATION_KEY_LENGTH = 32

type registerRequest struct {
	Email                string `json:"email" form:"email" binding:"required,email"`
	Password             string `json:"password" form:"password" binding:"required,min=8"`
	FirstName            string `json:"firstName" form:"firstName" binding:"required"`
	LastName             string `json:"lastName" form:"lastName" binding:"required"`
	Title                string `json:"title" form:"title"`
	Institute            string `json:"institute" form:"institute" binding:"required"`
	Department           string `json:"department" form:"department" binding:"required"`
	PhoneNumber          string `json:"phoneNumber" form:"phoneNumber" binding:"required,len=10,numeric"`
	Position             string `json:"position" form:"position" binding:"omitempty,oneof=coordinator instructor"`
	State                string `json:"state" form:"state"`
	Location             string `json:"location" form:"location"`
	HowDidYouHearAboutUs string `json:"howDidYouHearAboutUs" form:"howDidYouHearAboutUs"`
}

// Register creates the user and an unverified profile, then queues the
// activation email. The account works only after the emailed key is used.
func (ac AuthController) Register(ctx *gin.Context) {
	var body registerRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid registration data", err, nil)
		return
	}

	hashedPassword, err := util.HashPassword(body.Password)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", err, nil)
		return
	}

	newUser := &model.User{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Password:  hashedPassword,
	}

	if err := ac.app.Repository.User.CheckDupAndCreate(ctx, nil, newUser); err != nil {
		util.ResponseFailed(ctx, http.StatusConflict, "Email already registered", err, nil)
		return
	}

	activationKey, err := util.GenerateNChar(ACTIVATION_KEY_LENGTH)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to register", err, nil)
		return
	}

	keyExpiry := time.Now().Add(ac.app.Config.Auth.ActivationKeyExpiry)
	profile := &model.Profile{
		Title:                body.Title,
		Institute:            body.Institute,
		Department:           body.Department,
		PhoneNumber:          body.PhoneNumber,
		Position:             constant.Position(body.Position),
		State:                body.State,
		Location:             body.Location,
		HowDidYouHearAboutUs: body.HowDidYouHearAboutUs,
		ActivationKey:        activationKey,
		KeyExpiryTime:        &keyExpiry,
		UserID:               newUser.ID,
	}
	if profile.Position == "" {
		profile.Position = constant.PositionCoordinator
	}

	if err := ac.app.Repository.Profile.Create(ctx, nil, profile); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Failed to create profile", err, nil)
		return
	}

	ac.queueActivationMail(newUser, activationKey)

	util.ResponseSuccess(ctx, gin.H{
		"user": newUser,
	})
}

// queueActivationMail enqueues the activation email. Registration already
// succeeded at this point, so a queue outage is logged rather than surfaced.
func (ac AuthController) queueActivationMail(user *model.User, activationKey string) {
	activationURL := fmt.Sprintf("%s/api/v1/auth/activate/%s", ac.app.Config.BaseURL, activationKey)
	job, err := queue.NewAccountActivationMailJob(user.Email, mailer.AccountActivationData{
		FirstName:     user.FirstName,
		ActivationURL: activationURL,
		ExpiryHours:   int(ac.app.Config.Auth.ActivationKeyExpiry.Hours()),
	})
	if err != nil {
		ac.app.Logger.Errorf("Failed to build activation mail job for %s: %v", user.Email, err)
		return
	}

	if err := ac.app.Queue.PublishMailJob(job); err != nil {
		ac.app.Logger.Errorf("Failed to queue activation mail for %s: %v", user.Email, err)
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (ac AuthController) Login(ctx *gin.Context) {
	var body loginRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid credentials", err, nil)
		return
	}

	user, err := ac.app.Repository.User.VerifyCredentials(ctx, nil, body.Email)
	if err != nil || !util.ComparePassword(user.Password, body.Password) {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Invalid email or password", nil, nil)
		return
	}

	if user.Profile != nil && !user.Profile.IsEmailVerified {
		util.ResponseFailed(ctx, http.StatusForbidden, "Email not verified, check your inbox for the activation link", nil, nil)
		return
	}

	refreshToken, accessToken, err := ac.generateTokens(user)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to login", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user":         user,
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

// RefreshToken exchanges a valid refresh token for a new token pair.
func (ac AuthController) RefreshToken(ctx *gin.Context) {
	token, err := util.RefreshToken(ctx)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	claims, err := ac.app.JWTService.VerifyJwtToken(token)
	if err != nil || claims.Type != constant.JWT_TYPE_REFRESH {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", nil, nil)
		return
	}

	user, err := ac.app.Repository.User.GetById(ctx, nil, claims.User.ID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
		return
	}

	refreshToken, accessToken, err := ac.generateTokens(user)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to refresh token", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"refreshToken": refreshToken,
		"accessToken":  accessToken,
	})
}

// Activate marks the profile as verified using the key from the activation
// email.
func (ac AuthController) Activate(ctx *gin.Context) {
	activationKey := ctx.Param("key")
	if activationKey == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Activation key is required", nil, nil)
		return
	}

	profile, err := ac.app.Repository.Profile.ActivateByKey(ctx, nil, activationKey)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid or expired activation key", err, nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"profile": profile,
	})
}

func (ac AuthController) generateTokens(user *model.User) (*string, *string, error) {
	position := constant.PositionCoordinator
	if user.Profile != nil {
		position = user.Profile.Position
	}

	return ac.app.JWTService.GenerateRefreshAndAccessToken(auth.JWTPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Position:  position,
		IsAdmin:   user.IsAdmin,
	})
}
