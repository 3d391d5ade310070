package dto

import (
	"time"

	"smartbuddy/model"
)

type UserLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type UserProfileResponse struct {
	Username  string              `json:"username"`
	Email     string              `json:"email"`
	CreatedAt time.Time           `json:"created_at"`
	Links     map[string]UserLink `json:"_links,omitempty"` // HAL-style links
}

func ToUserProfileResponse(user *model.User, links map[string]UserLink) UserProfileResponse {
	return UserProfileResponse{
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Links:     links,
	}
}
