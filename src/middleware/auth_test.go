package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/formworks/survey-server/src/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func authRouter(tokens *services.TokenService) (*gin.Engine, *map[string]string) {
	gin.SetMode(gin.TestMode)
	seen := map[string]string{}
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		seen[ContextAdminID] = c.GetString(ContextAdminID)
		seen[ContextUsername] = c.GetString(ContextUsername)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &seen
}

func serve(router *gin.Engine, mutate func(*http.Request)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if mutate != nil {
		mutate(req)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, _ := authRouter(tokens)

	w := serve(router, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, seen := authRouter(tokens)

	id := uuid.New()
	token, err := tokens.Issue(id, "admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := serve(router, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if (*seen)[ContextUsername] != "admin" {
		t.Errorf("expected username in context, got %q", (*seen)[ContextUsername])
	}
	if (*seen)[ContextAdminID] != id.String() {
		t.Errorf("expected admin id in context, got %q", (*seen)[ContextAdminID])
	}
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, _ := authRouter(tokens)

	token, err := tokens.Issue(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := serve(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	router, _ := authRouter(tokens)

	w := serve(router, func(req *http.Request) {
		req.Header.Set("Authorization", "Token abcdef")
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddleware_ExpiredVsInvalidMessages(t *testing.T) {
	tokens := services.NewTokenService(testSecret, time.Hour)
	expired := services.NewTokenService(testSecret, -time.Minute)
	router, _ := authRouter(tokens)

	expiredToken, err := expired.Issue(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	w := serve(router, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: expiredToken})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Token expired. Please login again") {
		t.Errorf("expected expired-token message, got %s", body)
	}

	w = serve(router, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-token"})
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for invalid token, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Invalid token") {
		t.Errorf("expected invalid-token message, got %s", body)
	}
}
