package response

import (
	"fmt"
	"net/http"
)

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 未登录或令牌无效
	Unauthorized ResponseCode = 3
	// 无权限
	Forbidden ResponseCode = 4
	// 资源不存在
	NotFound ResponseCode = 5
	// 唯一约束冲突（邮箱、用户名、slug 重复）
	Conflict ResponseCode = 6
	// 服务器内部错误
	InternalError ResponseCode = 7
	// 请求过于频繁
	TooManyRequests ResponseCode = 8
)

var httpStatus = map[ResponseCode]int{
	Fail:             http.StatusBadRequest,
	ParseError:       http.StatusBadRequest,
	InvalidParameter: http.StatusBadRequest,
	Unauthorized:     http.StatusUnauthorized,
	Forbidden:        http.StatusForbidden,
	NotFound:         http.StatusNotFound,
	Conflict:         http.StatusConflict,
	InternalError:    http.StatusInternalServerError,
	TooManyRequests:  http.StatusTooManyRequests,
}

// HTTPStatus 业务码对应的 HTTP 状态码
func (c ResponseCode) HTTPStatus() int {
	if status, ok := httpStatus[c]; ok {
		return status
	}
	if c == Success {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

func (be *BusinessError) Error() string {
	if be.Err != nil {
		return fmt.Sprintf("%s: %v", be.Msg, be.Err)
	}
	return be.Msg
}

func (be *BusinessError) Unwrap() error {
	return be.Err
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

// Internal 服务器内部错误的快捷构造，原始错误只进日志不返回给客户端
func Internal(err error) *BusinessError {
	return NewBusinessError(
		WithErrorCode(InternalError),
		WithErrorMessage("Internal server error"),
		WithError(err),
	)
}
