package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"smartbuddy/services"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware())
	router.GET("/protected", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router := setupAuthRouter(t)

	if w := request(router, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no header: status %d", w.Code)
	}
	if w := request(router, "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Errorf("non-bearer header: status %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router := setupAuthRouter(t)

	token, err := services.GenerateJWT("user-123")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	w := request(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status %d, body %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router := setupAuthRouter(t)

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"iss":     utils.JWTIssuer,
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if w := request(router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("expired token: status %d", w.Code)
	}
}

func TestAuthMiddlewareWrongIssuer(t *testing.T) {
	router := setupAuthRouter(t)

	claims := jwt.MapClaims{
		"user_id": "user-123",
		"iss":     "someone-else",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if w := request(router, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong issuer: status %d", w.Code)
	}
}

func TestAuthMiddlewareTamperedToken(t *testing.T) {
	router := setupAuthRouter(t)

	token, err := services.GenerateJWT("user-123")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if w := request(router, "Bearer "+token+"x"); w.Code != http.StatusUnauthorized {
		t.Errorf("tampered token: status %d", w.Code)
	}
}
