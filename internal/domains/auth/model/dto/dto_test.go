package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"riviera/infras/jwt"
	"riviera/internal/domains/auth/model/dto"
	"riviera/shared/constant"
	"riviera/shared/timezone"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "guest@example.com",
		Password: "plaintext-ignored",
		FullName: stringPtr("Ama Mensah"),
	}

	user := req.ToUserModel("guest@example.com", "hashed-password")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleUser, user.Level)
	assert.Equal(t, "Ama Mensah", *user.FullName)
	assert.True(t, user.Active)
	assert.False(t, user.IsVerified)
}

func TestRegisterRequest_ToRoleModel(t *testing.T) {
	req := dto.RegisterRequest{Email: "guest@example.com"}

	role := req.ToRoleModel("user-id", "guest@example.com")

	assert.NotEmpty(t, role.ID)
	assert.Equal(t, "user-id", role.UserID)
	assert.Equal(t, constant.RoleUser, role.Role)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

func stringPtr(s string) *string {
	return &s
}
