package middleware

import (
	"net/http"

	"github.com/SeakMengs/WorkshopHub/internal/auth"
	"github.com/SeakMengs/WorkshopHub/internal/constant"
	"github.com/SeakMengs/WorkshopHub/internal/util"
	"github.com/gin-gonic/gin"
)

const AUTH_USER_CONTEXT_KEY = "user"

// AuthMiddleware verifies the bearer access token and stores the
// authenticated user's payload in the request context under
// AUTH_USER_CONTEXT_KEY.
func (m *Middleware) AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := util.BearerToken(ctx)
		if err != nil {
			m.app.Logger.Debugf("Failed to read bearer token: %v", err)
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
			return
		}

		claims, err := m.app.JWTService.VerifyJwtToken(token)
		if err != nil {
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", err, nil)
			return
		}

		if claims.Type != constant.JWT_TYPE_ACCESS {
			m.app.Logger.Debugf("Rejected token of type %q on access-protected route", claims.Type)
			util.ResponseFailed(ctx, http.StatusUnauthorized, "Unauthorized", nil, nil)
			return
		}

		ctx.Set(AUTH_USER_CONTEXT_KEY, claims.User)
		ctx.Next()
	}
}

// AdminMiddleware requires an authenticated admin. Must run after
// AuthMiddleware.
func (m *Middleware) AdminMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := authUserFromContext(ctx)
		if !ok || !user.IsAdmin {
			util.ResponseFailed(ctx, http.StatusForbidden, "Admin access required", nil, nil)
			return
		}

		ctx.Next()
	}
}

// InstructorMiddleware requires the authenticated user to hold the
// instructor position. Must run after AuthMiddleware.
func (m *Middleware) InstructorMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := authUserFromContext(ctx)
		if !ok || user.Position != constant.PositionInstructor {
			util.ResponseFailed(ctx, http.StatusForbidden, "Instructor access required", nil, nil)
			return
		}

		ctx.Next()
	}
}

func authUserFromContext(ctx *gin.Context) (auth.JWTPayload, bool) {
	value, exists := ctx.Get(AUTH_USER_CONTEXT_KEY)
	if !exists {
		return auth.JWTPayload{}, false
	}

	user, ok := value.(auth.JWTPayload)
	return user, ok
}
