package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthContext(t *testing.T, header string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		ctx.Request.Header.Set("Authorization", header)
	}

	return ctx
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"scheme is case-insensitive", "bearer abc", "abc", false},
		{"missing header", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"wrong scheme", "Refresh abc", "", true},
		{"empty token", "Bearer ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BearerToken(newAuthContext(t, tt.header))
			if (err != nil) != tt.wantErr {
				t.Fatalf("BearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("BearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}

func TestRefreshTokenRejectsBearerScheme(t *testing.T) {
	if _, err := RefreshToken(newAuthContext(t, "Bearer abc")); err == nil {
		t.Error("RefreshToken accepted a Bearer header")
	}

	got, err := RefreshToken(newAuthContext(t, "Refresh abc"))
	if err != nil {
		t.Fatalf("RefreshToken returned error: %v", err)
	}
	if got != "abc" {
		t.Errorf("RefreshToken = %q, want abc", got)
	}
}
