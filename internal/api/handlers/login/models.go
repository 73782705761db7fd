package login

import (
	"time"

	"github.com/m04kA/SMC-WeddingBooking/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	Username  string `json:"username"`
	ExpiresAt string `json:"expiresAt"`
}

func (r *LoginRequest) ToServiceRequest(clientIP string) *auth.LoginRequest {
	return &auth.LoginRequest{
		Username:   r.Username,
		Password:   r.Password,
		RememberMe: r.RememberMe,
		ClientIP:   clientIP,
	}
}

func FromServiceResult(res *auth.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:     res.Token,
		TokenType: "Bearer",
		Username:  res.Username,
		ExpiresAt: res.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
