package response

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey gin.Context 中保存最终错误的键，日志中间件读取
const ErrorContextKey = "error"

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// Error 统一错误：错误码、类别、消息，以及原始错误链与堆栈
type Error struct {
	Code    int32  `json:"code"`
	Kind    string `json:"error"`
	Message string `json:"message"`
	Origin  string `json:"origin,omitempty"`

	cause error
	stack pkgerrors.StackTrace
}

func newError(code int32, kind, msg string) *Error {
	return &Error{Code: code, Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (%d): %s: %v", e.Kind, e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Code, e.Message)
}

// GetCode 实现 sentry.CodedError
func (e *Error) GetCode() int32 {
	return e.Code
}

// HTTPStatus 错误码前三位即 HTTP 状态码
func (e *Error) HTTPStatus() int {
	status := int(e.Code / 100)
	if status < 400 || status > 599 {
		return http.StatusInternalServerError
	}
	return status
}

func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace 供 Sentry 提取堆栈
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if st, ok := e.cause.(stackTracer); ok {
		return st.StackTrace()
	}
	return nil
}

// Is 同错误码即视为同一错误
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func (e *Error) clone() *Error {
	cp := *e
	return &cp
}

// WithOrigin 附带原始错误，debug 模式下会返回给前端
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}
	if _, ok := err.(stackTracer); !ok {
		err = pkgerrors.WithStack(err)
	}

	out := e.clone()
	out.Origin = fmt.Sprintf("%+v", err)
	out.cause = err
	out.stack = err.(stackTracer).StackTrace()
	return out
}

// WithTips 追加提示信息，release 模式也可见
func (e *Error) WithTips(details ...string) *Error {
	out := e.clone()
	out.Message = e.Message + " " + fmt.Sprintf("%v", details)
	return out
}
