package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tick/infras/jwt"
	"tick/internal/domains/auth/model/dto"
	"tick/shared/timezone"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Test User"
	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "plaintext-ignored",
		FullName: &fullName,
	}

	user := req.ToUserModel("guest", "hashed-password")

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, &fullName, user.FullName)
	assert.True(t, user.Active)
	assert.Nil(t, user.LastLogin)
	assert.Equal(t, "guest", user.CreatedBy)
	assert.Equal(t, "guest", user.ModifiedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
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

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}
