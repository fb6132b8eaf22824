package auth

import (
	"github.com/gin-gonic/gin"

	"portfolio-terrace/api/internal/dto"
	"portfolio-terrace/api/internal/user"
	"portfolio-terrace/api/pkg/response"
)

type AuthHandler struct {
	authService *AuthService
	userRepo    *user.UserRepository
}

func NewAuthHandler(authService *AuthService, userRepo *user.UserRepository) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Login 管理员登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, berr := h.authService.Login(req)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}

	dto.SuccessResponse(c, result)
}

// Refresh 刷新访问令牌
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	result, berr := h.authService.Refresh(req.RefreshToken)
	if berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}

	dto.SuccessResponse(c, result)
}

// Logout 登出
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	// 登出时没有刷新令牌也算成功
	_ = c.ShouldBindJSON(&req)

	if berr := h.authService.Logout(req.RefreshToken); berr != nil {
		dto.ErrorResponse(c, berr)
		return
	}

	dto.MessageResponse(c, "已登出")
}

// Me 当前登录用户信息, 需要认证
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		dto.ErrorResponse(c, response.UnauthorizedError("未登录"))
		return
	}

	account, err := h.userRepo.FindByID(userID.(uint))
	if err != nil {
		dto.ErrorResponse(c, response.NotFoundError("账号不存在"))
		return
	}

	dto.SuccessResponse(c, Me{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
		Role:  account.Role,
	})
}
