package response

// 业务错误码
const (
	// 未分类失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 唯一性冲突
	Conflict ResponseCode = 3
	// 资源不存在
	NotFound ResponseCode = 4
	// 未认证
	Unauthorized ResponseCode = 5
	// 权限不足
	Forbidden ResponseCode = 6
	// 服务内部错误
	Internal ResponseCode = 7
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// 常用错误的快捷构造

func NotFoundError(msg string) *BusinessError {
	return &BusinessError{Code: NotFound, Msg: msg}
}

func ValidationError(msg string) *BusinessError {
	return &BusinessError{Code: InvalidParameter, Msg: msg}
}

func ConflictError(msg string) *BusinessError {
	return &BusinessError{Code: Conflict, Msg: msg}
}

func UnauthorizedError(msg string) *BusinessError {
	return &BusinessError{Code: Unauthorized, Msg: msg}
}

func ForbiddenError(msg string) *BusinessError {
	return &BusinessError{Code: Forbidden, Msg: msg}
}

func InternalError(msg string, err error) *BusinessError {
	return &BusinessError{Code: Internal, Msg: msg, Err: err}
}
