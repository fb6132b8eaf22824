package settings

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/dto"
	"portfolio-terrace/api/internal/upload"
	"portfolio-terrace/api/pkg/response"
)

type SettingsHandler struct {
	service *SettingsService
	saver   *upload.Saver
	assets  *asset.Manager
}

func NewSettingsHandler(service *SettingsService, saver *upload.Saver, assets *asset.Manager) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		saver:   saver,
		assets:  assets,
	}
}

// Get 读取站点设置(首次访问自动创建)
func (h *SettingsHandler) Get(c *gin.Context) {
	record, err := h.service.Get()
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, record)
}

// Update 更新站点设置, 支持JSON和multipart(resume/avatar文件)
func (h *SettingsHandler) Update(c *gin.Context) {
	payload, err := h.payload(c)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	// 简历和头像作为文件上传
	for _, field := range fileFields {
		fileHeader, ferr := h.saver.File(c, field)
		if ferr != nil {
			dto.ErrorResponse(c, ferr)
			return
		}
		if fileHeader == nil {
			continue
		}
		filename, ferr := h.saver.Save(c, fileHeader)
		if ferr != nil {
			dto.ErrorResponse(c, ferr)
			return
		}
		payload[field] = h.assets.PublicPath(filename)
	}

	record, err := h.service.Update(payload)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, record)
}

// payload 提取请求体字段, JSON或表单
func (h *SettingsHandler) payload(c *gin.Context) (map[string]any, *response.BusinessError) {
	payload := make(map[string]any)
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") ||
		contentType == "application/x-www-form-urlencoded" {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			if err := c.Request.ParseForm(); err != nil {
				return nil, response.NewBusinessError(
					response.WithErrorCode(response.ParseError),
					response.WithErrorMessage("解析表单失败"),
				)
			}
		}
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
		return payload, nil
	}

	if c.Request.ContentLength == 0 {
		return payload, nil
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.ParseError),
			response.WithErrorMessage("解析请求体失败"),
			response.WithError(err),
		)
	}
	return payload, nil
}
