package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"aarka/internal/auth"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	group := r.Group("/protected")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"deviceID": c.GetString("deviceID"),
			"role":     c.GetString("deviceRole"),
		})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if w := request(protectedRouter(), ""); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadFormat(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := protectedRouter()

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer a b"} {
		if w := request(r, header); w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if w := request(protectedRouter(), "Bearer garbage"); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken("dev-1", "front-counter", auth.RoleKiosk)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	w := request(protectedRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	kioskToken, err := auth.GenerateToken("dev-1", "front-counter", auth.RoleKiosk)
	if err != nil {
		t.Fatal(err)
	}
	adminToken, err := auth.GenerateToken("admin", "admin", auth.RoleAdmin)
	if err != nil {
		t.Fatal(err)
	}

	adminOnly := protectedRouter(auth.RoleAdmin)

	if w := request(adminOnly, "Bearer "+kioskToken); w.Code != http.StatusForbidden {
		t.Errorf("kiosk on admin route: status = %d, want 403", w.Code)
	}
	if w := request(adminOnly, "Bearer "+adminToken); w.Code != http.StatusOK {
		t.Errorf("admin on admin route: status = %d, want 200", w.Code)
	}

	either := protectedRouter(auth.RoleKiosk, auth.RoleAdmin)
	if w := request(either, "Bearer "+kioskToken); w.Code != http.StatusOK {
		t.Errorf("kiosk on shared route: status = %d, want 200", w.Code)
	}
}
