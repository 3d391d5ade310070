package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartbuddy/model"
	"smartbuddy/services"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
)

type fakeUserService struct {
	registerErr error
}

func (f *fakeUserService) Register(_ context.Context, user *model.User) (*model.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	user.UserID = "user-1"
	return user, nil
}

func (f *fakeUserService) Authenticate(context.Context, string, string) (string, *model.User, error) {
	return "", nil, usecase.ErrInvalidCredentials
}

func (f *fakeUserService) GetProfile(context.Context, string) (*model.User, error) {
	return nil, nil
}

func setupUserRouter(svc userProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.InitValidator()

	h := &UserHandler{service: svc}
	router := gin.New()
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/logout", h.Logout)
	return router
}

func TestLogoutWithoutRedisStillSucceeds(t *testing.T) {
	prev := services.TokenBlacklist
	services.TokenBlacklist = nil
	defer func() { services.TokenBlacklist = prev }()

	router := setupUserRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for logout without a blacklist, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogoutWithoutBearerToken(t *testing.T) {
	router := setupUserRouter(&fakeUserService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/logout", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a bearer token, got %d", w.Code)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	router := setupUserRouter(&fakeUserService{registerErr: usecase.ErrEmailTaken})

	body := `{"username":"newuser","email":"taken@example.com","password":"secret1!"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a taken email, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Email already registered") {
		t.Errorf("expected the email conflict message, got %s", w.Body.String())
	}
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	router := setupUserRouter(&fakeUserService{registerErr: usecase.ErrUsernameTaken})

	body := `{"username":"takenuser","email":"new@example.com","password":"secret1!"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a taken username, got %d: %s", w.Code, w.Body.String())
	}
}
