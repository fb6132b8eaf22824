// Package refresh 刷新令牌的Redis存储
package refresh

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"portfolio-terrace/api/pkg/database"
)

const (
	// RefreshToken Redis key 前缀
	RefreshTokenPrefix = "refresh_token:"
)

// TokenData 令牌数据结构
type TokenData struct {
	UserID uint
	Email  string
	Role   string
}

// RefreshTokenRepository 刷新令牌数据访问层
type RefreshTokenRepository struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewRefreshTokenRepository 创建刷新令牌仓库实例
func NewRefreshTokenRepository(redisClient *database.RedisClient, ttl time.Duration) *RefreshTokenRepository {
	return &RefreshTokenRepository{
		redis: redisClient,
		ttl:   ttl,
	}
}

// Create 创建刷新令牌并存储到 Redis
func (r *RefreshTokenRepository) Create(token string, data TokenData) error {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	tokenData := map[string]interface{}{
		"user_id": strconv.FormatUint(uint64(data.UserID), 10),
		"email":   data.Email,
		"role":    data.Role,
	}

	if err := r.redis.HSet(ctx, key, tokenData).Err(); err != nil {
		return fmt.Errorf("存储令牌失败: %w", err)
	}

	// 设置过期时间
	if err := r.redis.Expire(ctx, key, r.ttl).Err(); err != nil {
		return fmt.Errorf("设置令牌过期时间失败: %w", err)
	}

	return nil
}

// Get 获取刷新令牌信息
func (r *RefreshTokenRepository) Get(token string) (*TokenData, error) {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	tokenData, err := r.redis.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("获取令牌信息失败: %w", err)
	}

	if len(tokenData) == 0 {
		return nil, fmt.Errorf("令牌不存在或已过期")
	}

	userIDStr, ok := tokenData["user_id"]
	if !ok {
		return nil, fmt.Errorf("令牌数据不完整")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("用户 ID 格式错误: %w", err)
	}

	return &TokenData{
		UserID: uint(userID),
		Email:  tokenData["email"],
		Role:   tokenData["role"],
	}, nil
}

// Delete 删除刷新令牌（登出或轮换）
func (r *RefreshTokenRepository) Delete(token string) error {
	ctx := context.Background()
	key := RefreshTokenPrefix + token

	if err := r.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("撤销令牌失败: %w", err)
	}
	return nil
}
