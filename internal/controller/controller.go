package controller

import (
	"errors"

	appcontext "github.com/SeakMengs/WorkshopHub/internal/app_context"
	"github.com/SeakMengs/WorkshopHub/internal/auth"
	"github.com/SeakMengs/WorkshopHub/internal/middleware"
	"github.com/gin-gonic/gin"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index        *IndexController
	Auth         *AuthController
	User         *UserController
	Workshop     *WorkshopController
	WorkshopType *WorkshopTypeController
	Category     *CategoryController
	Rating       *RatingController
	Chat         *ChatController
	Notification *NotificationController
	Comment      *CommentController
	Testimonial  *TestimonialController
	Banner       *BannerController
	Dashboard    *DashboardController
}

func NewController(app *appcontext.Application) *Controller {
	bc := baseController{app: app}

	return &Controller{
		Index:        &IndexController{baseController: bc},
		Auth:         &AuthController{baseController: bc},
		User:         &UserController{baseController: bc},
		Workshop:     &WorkshopController{baseController: bc},
		WorkshopType: &WorkshopTypeController{baseController: bc},
		Category:     &CategoryController{baseController: bc},
		Rating:       &RatingController{baseController: bc},
		Chat:         &ChatController{baseController: bc},
		Notification: &NotificationController{baseController: bc},
		Comment:      &CommentController{baseController: bc},
		Testimonial:  &TestimonialController{baseController: bc},
		Banner:       &BannerController{baseController: bc},
		Dashboard:    &DashboardController{baseController: bc},
	}
}

// getAuthUser reads the payload stored by the auth middleware. Handlers on
// protected routes can assume it is present; the error path covers misuse.
func (bc baseController) getAuthUser(ctx *gin.Context) (auth.JWTPayload, error) {
	value, exists := ctx.Get(middleware.AUTH_USER_CONTEXT_KEY)
	if !exists {
		return auth.JWTPayload{}, errors.New("no authenticated user in request context")
	}

	user, ok := value.(auth.JWTPayload)
	if !ok {
		return auth.JWTPayload{}, errors.New("malformed auth payload in request context")
	}

	return user, nil
}
