package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateJWT(t *testing.T) {
	service := &JWTService{}

	token, err := service.GenerateJWT(1, time.Now().Add(15*time.Minute))
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidateToken(t *testing.T) {
	service := &JWTService{}

	tests := []struct {
		name      string
		token     func() string
		expectErr bool
		userID    int
	}{
		{
			name: "Valid token",
			token: func() string {
				token, _ := service.GenerateJWT(42, time.Now().Add(15*time.Minute))
				return token
			},
			expectErr: false,
			userID:    42,
		},
		{
			name: "Expired token",
			token: func() string {
				token, _ := service.GenerateJWT(42, time.Now().Add(-15*time.Minute))
				return token
			},
			expectErr: true,
		},
		{
			name: "Zero user id",
			token: func() string {
				token, _ := service.GenerateJWT(0, time.Now().Add(15*time.Minute))
				return token
			},
			expectErr: true,
		},
		{
			name:      "Garbage token",
			token:     func() string { return "not.a.token" },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, claims.UserID)
			}
		})
	}
}
