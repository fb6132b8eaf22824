package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portfolio-terrace/api/config"
	"portfolio-terrace/api/internal/middleware"
	"portfolio-terrace/api/internal/refresh"
	"portfolio-terrace/api/internal/user"
	"portfolio-terrace/api/pkg/database"
)

// SetupAuthRoutes 设置认证路由
func SetupAuthRoutes(r *gin.RouterGroup, db *gorm.DB, redisClient *database.RedisClient) {
	userRepo := user.NewUserRepository(db)
	tokenRepo := refresh.NewRefreshTokenRepository(
		redisClient,
		time.Duration(config.Conf.JWT.RefreshExpireTime)*time.Hour,
	)
	handler := NewAuthHandler(NewAuthService(userRepo, tokenRepo), userRepo)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handler.Login)     // 管理员登录
		authGroup.POST("/refresh", handler.Refresh) // 刷新访问令牌
		authGroup.POST("/logout", handler.Logout)   // 登出

		authGroup.GET("/me", middleware.JWTAuth(), handler.Me) // 当前用户信息（需要认证）
	}
}
