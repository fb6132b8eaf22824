package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio-terrace/api/internal/testutils"
)

func TestUserRepository(t *testing.T) {
	repo := NewUserRepository(testutils.SetupTestDB(t))

	created, err := repo.Create("admin@example.com", "secret123", "管理员")
	require.NoError(t, err)
	assert.Equal(t, "admin", created.Role)
	// 不存明文密码
	assert.NotEqual(t, "secret123", created.PasswordHash)

	t.Run("按邮箱查找", func(t *testing.T) {
		u, err := repo.FindByEmail("admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("邮箱不存在", func(t *testing.T) {
		_, err := repo.FindByEmail("nobody@example.com")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("密码校验", func(t *testing.T) {
		assert.True(t, repo.VerifyPassword(created, "secret123"))
		assert.False(t, repo.VerifyPassword(created, "wrong"))
	})

	t.Run("重置密码后旧密码失效", func(t *testing.T) {
		require.NoError(t, repo.SetPassword(created.ID, "newpass456"))
		u, err := repo.FindByID(created.ID)
		require.NoError(t, err)
		assert.True(t, repo.VerifyPassword(u, "newpass456"))
		assert.False(t, repo.VerifyPassword(u, "secret123"))
	})
}
