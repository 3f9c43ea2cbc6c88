package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func resolveWith(t *testing.T, authHeader string) (Identity, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var (
		got Identity
		ok  bool
	)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/", func(c *gin.Context) {
		got, ok = FromContext(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return got, ok
}

func TestMiddlewareResolvesPersonalIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("user_1", "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	ident, ok := resolveWith(t, "Bearer "+token)
	if !ok {
		t.Fatalf("identity not resolved")
	}
	if ident.UserID != "user_1" || ident.OrganizationID != nil {
		t.Fatalf("unexpected identity %+v", ident)
	}
	if !ident.Personal() {
		t.Fatalf("expected personal scope")
	}
}

func TestMiddlewareResolvesOrganizationIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := SignToken("user_1", "org_1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	ident, ok := resolveWith(t, "Bearer "+token)
	if !ok {
		t.Fatalf("identity not resolved")
	}
	if ident.OrganizationID == nil || *ident.OrganizationID != "org_1" {
		t.Fatalf("unexpected identity %+v", ident)
	}
	if ident.Personal() {
		t.Fatalf("expected organization scope")
	}
}

func TestMiddlewareLeavesBadTokensAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	for _, header := range []string{"", "Bearer not-a-token", "Bearer "} {
		if _, ok := resolveWith(t, header); ok {
			t.Fatalf("header %q resolved an identity", header)
		}
	}
}

func TestSignTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := SignToken("user_1", ""); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}
