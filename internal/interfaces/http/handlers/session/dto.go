package session

import (
	"github.com/LucasFelipeJesus/portal-chamados/internal/application/session/usecases"
	"github.com/LucasFelipeJesus/portal-chamados/internal/interfaces/http/dto"
)

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponse struct {
	AccessToken         string              `json:"access_token"`
	ExpiresIn           int64               `json:"expires_in"`
	ForcePasswordChange bool                `json:"force_password_change"`
	Profile             dto.ProfileResponse `json:"profile"`
}

func newSignInResponse(result *usecases.SignInResult) SignInResponse {
	return SignInResponse{
		AccessToken:         result.AccessToken,
		ExpiresIn:           result.ExpiresIn,
		ForcePasswordChange: result.ForcePasswordChange,
		Profile:             dto.NewProfileResponse(result.Profile),
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
