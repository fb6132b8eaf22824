// Package upload 接收multipart上传并落盘
// 只负责边界校验(类型/大小)和存储, 文件与记录的绑定在asset包
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-terrace/api/pkg/response"
)

// 允许的上传类型: 图片和PDF
var allowedTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
	".pdf":  true,
}

// Saver 把上传文件存入指定目录
type Saver struct {
	dir      string
	maxBytes int64
}

func NewSaver(dir string, maxSizeMB int64) *Saver {
	return &Saver{
		dir:      dir,
		maxBytes: maxSizeMB * 1024 * 1024,
	}
}

// File 请求中名为field的上传文件
// 没有该文件时返回 (nil, nil), 有文件但不合法时返回业务错误
func (s *Saver) File(c *gin.Context, field string) (*multipart.FileHeader, *response.BusinessError) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		// 没有携带文件, 不是错误
		return nil, nil
	}

	if err := s.validate(fileHeader); err != nil {
		return nil, err
	}

	return fileHeader, nil
}

// Save 校验并保存上传文件, 返回存储文件名(uuid+原扩展名)
func (s *Saver) Save(c *gin.Context, fileHeader *multipart.FileHeader) (string, *response.BusinessError) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", response.InternalError("创建上传目录失败", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(s.dir, filename)); err != nil {
		return "", response.InternalError("保存上传文件失败", err)
	}

	return filename, nil
}

// validate 类型和大小校验
func (s *Saver) validate(fileHeader *multipart.FileHeader) *response.BusinessError {
	if s.maxBytes > 0 && fileHeader.Size > s.maxBytes {
		return response.ValidationError(
			fmt.Sprintf("文件大小超过限制(%dMB)", s.maxBytes/1024/1024))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedTypes[contentType] && !allowedExts[ext] {
		return response.ValidationError("只支持图片或PDF文件")
	}

	return nil
}
