package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	res "portfolio-terrace/api/pkg/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

// CreatedResponse 创建成功返回201
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.SuccessResponse(data))
}

// ListSuccessResponse 列表响应携带count/total
func ListSuccessResponse(c *gin.Context, data any, count, total int) {
	c.JSON(http.StatusOK, res.ListResponse(data, count, total))
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, res.CustomResponse(res.WithMessage(message)))
}

// ErrorResponse 业务错误统一出口, 按错误码映射HTTP状态
// 对外只暴露可读消息, 不泄漏内部细节
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(res.HTTPStatus(err.Code), res.ErrorResponse(err.Code, err.Msg))
}

// ValidationErrorResponse 处理绑定验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// 获取第一个错误
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]
			jsonField := toSnakeCase(firstErr.Field())

			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
			case "email":
				message = fmt.Sprintf("字段 '%s' 必须是合法邮箱", jsonField)
			case "max":
				message = fmt.Sprintf("字段 '%s' 长度不能超过 %s", jsonField, firstErr.Param())
			case "min":
				message = fmt.Sprintf("字段 '%s' 长度不能少于 %s", jsonField, firstErr.Param())
			case "oneof":
				message = fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", jsonField, firstErr.Param())
			default:
				message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
			}

			ErrorResponse(c, res.NewBusinessError(
				res.WithErrorCode(res.ParseError),
				res.WithErrorMessage(message),
			))
			return
		}
	}

	// 如果不是 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
