package resource

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-terrace/api/internal/asset"
	"portfolio-terrace/api/internal/dto"
	"portfolio-terrace/api/internal/upload"
	"portfolio-terrace/api/pkg/response"
)

// Handler 通用gin处理器
// 实体路由包用各自的Schema实例化, 不再各写一套CRUD
type Handler[T any] struct {
	service *Service[T]
	saver   *upload.Saver
	assets  *asset.Manager
}

func NewHandler[T any](service *Service[T], saver *upload.Saver, assets *asset.Manager) *Handler[T] {
	return &Handler[T]{
		service: service,
		saver:   saver,
		assets:  assets,
	}
}

func (h *Handler[T]) Service() *Service[T] {
	return h.service
}

// List 列表查询
func (h *Handler[T]) List(c *gin.Context) {
	h.listWith(c, nil)
}

// ListWith 带路由强制过滤条件的列表查询
func (h *Handler[T]) ListWith(force map[string]any) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.listWith(c, force)
	}
}

func (h *Handler[T]) listWith(c *gin.Context, force map[string]any) {
	items, total, err := h.service.List(c.Request.URL.Query(), force)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.ListSuccessResponse(c, items, len(items), int(total))
}

// Get 单条查询
// 带计数字段的实体在公开读取成功后阅读量+1
func (h *Handler[T]) Get(c *gin.Context) {
	m, err := h.service.Get(c.Param("id"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	h.service.CountView(m)
	dto.SuccessResponse(c, m)
}

// Create 创建, 支持JSON和multipart表单(文件字段名image)
func (h *Handler[T]) Create(c *gin.Context) {
	payload, err := h.payload(c)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	if err := h.bindUpload(c, payload); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	m, err := h.service.Create(payload)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, m)
}

// Update 合并更新
func (h *Handler[T]) Update(c *gin.Context) {
	payload, err := h.payload(c)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	if err := h.bindUpload(c, payload); err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	m, err := h.service.Update(c.Param("id"), payload)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, m)
}

// Delete 删除记录及其文件
func (h *Handler[T]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.MessageResponse(c, h.service.Schema().Name+"已删除")
}

// Toggle 翻转指定布尔开关
func (h *Handler[T]) Toggle(flag string) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := h.service.Toggle(c.Param("id"), flag)
		if err != nil {
			dto.ErrorResponse(c, err)
			return
		}
		dto.SuccessResponse(c, m)
	}
}

// Progress 更新进度
func (h *Handler[T]) Progress(c *gin.Context) {
	payload, err := h.payload(c)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}

	field := h.service.Schema().ProgressField
	raw, ok := payload[field]
	if !ok {
		dto.ErrorResponse(c, response.ValidationError("字段 '"+field+"' 是必填项"))
		return
	}

	value, verr := progressValue(raw)
	if verr != nil {
		dto.ErrorResponse(c, verr)
		return
	}

	m, err := h.service.UpdateProgress(c.Param("id"), value)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, m)
}

// payload 提取请求体字段
// JSON请求绑定为map, multipart/form表单取每个字段的首个值
func (h *Handler[T]) payload(c *gin.Context) (map[string]any, *response.BusinessError) {
	contentType := c.ContentType()
	if strings.HasPrefix(contentType, "multipart/form-data") ||
		contentType == "application/x-www-form-urlencoded" {
		if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
			// 普通表单没有multipart体
			if err := c.Request.ParseForm(); err != nil {
				return nil, response.NewBusinessError(
					response.WithErrorCode(response.ParseError),
					response.WithErrorMessage("解析表单失败"),
				)
			}
		}
		payload := make(map[string]any)
		for key, values := range c.Request.PostForm {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
		return payload, nil
	}

	payload := make(map[string]any)
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

// bindUpload 保存上传文件并把对外路径绑定进payload
func (h *Handler[T]) bindUpload(c *gin.Context, payload map[string]any) *response.BusinessError {
	field := h.service.Schema().ImageField
	if field == "" {
		return nil
	}

	fileHeader, err := h.saver.File(c, "image")
	if err != nil {
		return err
	}
	if fileHeader == nil {
		return nil
	}

	filename, err := h.saver.Save(c, fileHeader)
	if err != nil {
		return err
	}
	payload[field] = h.assets.PublicPath(filename)
	return nil
}

// progressValue 进度值支持数字和字符串两种形式
func progressValue(raw any) (int, *response.BusinessError) {
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, response.ValidationError("字段 'progress' 必须是整数")
		}
		return n, nil
	default:
		return 0, response.ValidationError("字段 'progress' 必须是整数")
	}
}
