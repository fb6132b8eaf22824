package response

import "net/http"

type ResponseCode int

// 统一业务代码
const (
	Success ResponseCode = 100
)

// Response 统一响应结构
// data/count/total/message/error 按需填充, 不使用时从JSON中省略
type Response struct {
	Success bool         `json:"success"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data,omitempty"`
	Count   *int         `json:"count,omitempty"`
	Total   *int         `json:"total,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   string       `json:"error,omitempty"`
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func WithCount(count int) ResponseOptions {
	return func(r *Response) {
		r.Count = &count
	}
}

func WithTotal(total int) ResponseOptions {
	return func(r *Response) {
		r.Total = &total
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{
		Success: true,
		Code:    Success,
	}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func SuccessResponse(data any) Response {
	return Response{
		Success: true,
		Code:    Success,
		Data:    data,
	}
}

// ListResponse 列表响应, count为本次返回条数, total为过滤前总数
func ListResponse(data any, count, total int) Response {
	return Response{
		Success: true,
		Code:    Success,
		Data:    data,
		Count:   &count,
		Total:   &total,
	}
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Success: false,
		Code:    code,
		Error:   msg,
	}
}

// HTTPStatus 业务码到HTTP状态码的唯一映射
func HTTPStatus(code ResponseCode) int {
	switch code {
	case Success:
		return http.StatusOK
	case ParseError, InvalidParameter, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
