package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// authorizationToken pulls the credential out of the Authorization header and
// checks its scheme against the one the route expects. Scheme comparison is
// case-insensitive per RFC 7235.
func authorizationToken(ctx *gin.Context, scheme string) (string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", errors.New("authorization header is missing")
	}

	gotScheme, token, found := strings.Cut(header, " ")
	if !found || token == "" {
		return "", errors.New("authorization header must be of the form '<scheme> <token>'")
	}

	if !strings.EqualFold(gotScheme, scheme) {
		return "", fmt.Errorf("authorization scheme must be %q", scheme)
	}

	return token, nil
}

// BearerToken returns the access token on routes guarded by the auth
// middleware.
func BearerToken(ctx *gin.Context) (string, error) {
	return authorizationToken(ctx, "Bearer")
}

// RefreshToken returns the token presented to the refresh endpoint. The
// endpoint uses its own scheme so an access token pasted into the header is
// rejected before verification.
func RefreshToken(ctx *gin.Context) (string, error) {
	return authorizationToken(ctx, "Refresh")
}
