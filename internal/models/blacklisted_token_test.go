package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlacklistedToken_IsExpired(t *testing.T) {
	tests := []struct {
		name    string
		token   BlacklistedToken
		expired bool
	}{
		{
			name:    "token not expired",
			token:   BlacklistedToken{ExpiresAt: time.Now().Add(time.Hour)},
			expired: false,
		},
		{
			name:    "token expired",
			token:   BlacklistedToken{ExpiresAt: time.Now().Add(-time.Hour)},
			expired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, tt.token.IsExpired())
		})
	}
}

func TestNewBlacklistedToken(t *testing.T) {
	userID := uuid.New()
	expiresAt := time.Now().Add(time.Hour)

	token := NewBlacklistedToken("jti-1", userID, expiresAt)

	assert.Equal(t, "jti-1", token.JTI)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, expiresAt, token.ExpiresAt)
	assert.False(t, token.BlacklistedAt.IsZero())
}

func TestBlacklistedToken_BeforeCreate(t *testing.T) {
	token := &BlacklistedToken{JTI: "jti-2", UserID: uuid.New(), ExpiresAt: time.Now()}

	require.NoError(t, token.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, token.ID)
	assert.False(t, token.BlacklistedAt.IsZero())
}
