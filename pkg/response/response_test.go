package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code ResponseCode
		want int
	}{
		{"成功", Success, http.StatusOK},
		{"解析错误", ParseError, http.StatusBadRequest},
		{"参数校验失败", InvalidParameter, http.StatusBadRequest},
		{"唯一性冲突", Conflict, http.StatusBadRequest},
		{"资源不存在", NotFound, http.StatusNotFound},
		{"未认证", Unauthorized, http.StatusUnauthorized},
		{"权限不足", Forbidden, http.StatusForbidden},
		{"内部错误", Internal, http.StatusInternalServerError},
		{"未知业务码兜底500", Fail, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestBusinessError(t *testing.T) {
	err := NotFoundError("文章不存在")
	assert.Equal(t, NotFound, err.Code)
	assert.Equal(t, "文章不存在", err.Error())

	wrapped := InternalError("查询失败", assert.AnError)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
