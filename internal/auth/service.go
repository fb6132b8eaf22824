package auth

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-terrace/api/internal/refresh"
	"portfolio-terrace/api/internal/user"
	"portfolio-terrace/api/pkg/response"
)

// AuthService 管理员认证
type AuthService struct {
	userRepo  *user.UserRepository
	tokenRepo *refresh.RefreshTokenRepository
}

func NewAuthService(userRepo *user.UserRepository, tokenRepo *refresh.RefreshTokenRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
	}
}

// Login 账号密码登录
// 账号不存在和密码错误返回同一条消息, 不暴露邮箱是否注册过
func (s *AuthService) Login(req LoginRequest) (*LoginResponse, *response.BusinessError) {
	// 1. 查询账号
	account, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.UnauthorizedError("邮箱或密码错误")
		}
		return nil, response.InternalError("登录失败", err)
	}

	// 2. 校验密码
	if !s.userRepo.VerifyPassword(account, req.Password) {
		return nil, response.UnauthorizedError("邮箱或密码错误")
	}

	// 3. 生成 access token (JWT)
	accessToken, err := GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, response.InternalError("生成访问令牌失败", err)
	}

	// 4. 生成并存储 refresh token
	refreshToken, err := GenerateRandomToken()
	if err != nil {
		return nil, response.InternalError("生成刷新令牌失败", err)
	}
	if err := s.tokenRepo.Create(refreshToken, refresh.TokenData{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	}); err != nil {
		return nil, response.InternalError("存储刷新令牌失败", err)
	}

	// 5. 返回结果
	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: Me{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
			Role:  account.Role,
		},
	}, nil
}

// Refresh 用刷新令牌换新的访问令牌, 旧刷新令牌作废(轮换)
func (s *AuthService) Refresh(token string) (*LoginResponse, *response.BusinessError) {
	// 1. 校验刷新令牌
	data, err := s.tokenRepo.Get(token)
	if err != nil {
		return nil, response.UnauthorizedError("刷新令牌无效或已过期")
	}

	// 2. 账号仍需存在
	account, err := s.userRepo.FindByID(data.UserID)
	if err != nil {
		return nil, response.UnauthorizedError("账号不存在")
	}

	// 3. 生成新的 access token
	accessToken, err := GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, response.InternalError("生成访问令牌失败", err)
	}

	// 4. 轮换 refresh token
	newToken, err := GenerateRandomToken()
	if err != nil {
		return nil, response.InternalError("生成刷新令牌失败", err)
	}
	if err := s.tokenRepo.Create(newToken, *data); err != nil {
		return nil, response.InternalError("存储刷新令牌失败", err)
	}
	// 旧令牌删除失败不影响本次刷新
	_ = s.tokenRepo.Delete(token)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: newToken,
		User: Me{
			ID:    account.ID,
			Email: account.Email,
			Name:  account.Name,
			Role:  account.Role,
		},
	}, nil
}

// Logout 撤销刷新令牌
func (s *AuthService) Logout(token string) *response.BusinessError {
	if token == "" {
		return nil
	}
	if err := s.tokenRepo.Delete(token); err != nil {
		return response.InternalError("登出失败", err)
	}
	return nil
}
