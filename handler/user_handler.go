package handler

import (
	"context"
	"errors"
	"strings"

	"smartbuddy/dto"
	"smartbuddy/model"
	"smartbuddy/services"
	"smartbuddy/usecase"
	"smartbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type userProvider interface {
	Register(ctx context.Context, user *model.User) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (string, *model.User, error)
	GetProfile(ctx context.Context, userID string) (*model.User, error)
}

type UserHandler struct {
	service userProvider
}

func NewUserHandler(service *usecase.UsersService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := utils.Validate.Struct(&user); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			utils.BadRequest(c, "Validation failed on field: "+verrs[0].Field())
			return
		}
		utils.BadRequest(c, "Validation failed")
		return
	}

	created, err := h.service.Register(c.Request.Context(), &user)
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameTaken) {
			utils.Conflict(c, "Username already exists")
			return
		}
		if errors.Is(err, usecase.ErrEmailTaken) {
			utils.Conflict(c, "Email already registered")
			return
		}
		if strings.Contains(err.Error(), "password must be") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to create user")
		return
	}

	utils.Created(c, gin.H{
		"user_id":  created.UserID,
		"username": created.Username,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var loginReq model.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	token, user, err := h.service.Authenticate(c.Request.Context(), loginReq.Username, loginReq.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "Invalid username or password")
			return
		}
		utils.InternalError(c, "Login failed")
		return
	}

	utils.Success(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"user_id":  user.UserID,
			"username": user.Username,
		},
	})
}

// Logout blacklists the presented token until its natural expiry.
func (h *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		utils.BadRequest(c, "Missing bearer token")
		return
	}

	if err := services.BlacklistToken(token); err != nil {
		// Without Redis the token cannot be invalidated early; it expires
		// on schedule and the client discards its copy now.
		if !errors.Is(err, services.ErrBlacklistDisabled) {
			utils.InternalError(c, "Failed to invalidate token")
			return
		}
	}

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	links := map[string]dto.UserLink{
		"self":        {Href: "/api/user/profile", Method: "GET"},
		"preferences": {Href: "/api/preferences", Method: "GET"},
		"logout":      {Href: "/api/auth/logout", Method: "POST"},
	}
	utils.Success(c, dto.ToUserProfileResponse(user, links))
}
