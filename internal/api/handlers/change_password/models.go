package change_password

import "github.com/m04kA/SMC-WeddingBooking/internal/service/auth"

// ChangePasswordRequest HTTP request model
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *ChangePasswordRequest) ToServiceRequest() *auth.ChangePasswordRequest {
	return &auth.ChangePasswordRequest{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
		ConfirmPassword: r.ConfirmPassword,
	}
}
