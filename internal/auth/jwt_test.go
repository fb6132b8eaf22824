package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-terrace/api/config"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	old := config.Conf
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:            "test-secret-key",
			ExpireTime:        1,
			RefreshExpireTime: 168,
		},
	}
	t.Cleanup(func() { config.Conf = old })
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	setupTestConfig(t)

	token, err := GenerateAccessToken(1, "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseAccessToken_invalid(t *testing.T) {
	setupTestConfig(t)

	tests := []struct {
		name  string
		token string
	}{
		{"空字符串", ""},
		{"格式错误", "not.a.jwt"},
		{"被篡改的令牌", func() string {
			token, _ := GenerateAccessToken(1, "a@b.com", "admin")
			return token + "x"
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateRandomToken(t *testing.T) {
	first, err := GenerateRandomToken()
	require.NoError(t, err)
	second, err := GenerateRandomToken()
	require.NoError(t, err)

	// 32字节的十六进制编码
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
