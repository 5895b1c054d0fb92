package response

import (
	"errors"
	"fmt"
	"net/http"

	"pageant-scoring-system/config"
	"pageant-scoring-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const CodeSuccess int32 = 200

// 错误码前三位为 HTTP 状态码
var (
	ErrInvalidRequest = newError(40000, "invalid_request", "请求参数错误")
	ErrValidation     = newError(40001, "validation_error", "数据校验失败")
	ErrNotConfigured  = newError(40002, "not_configured", "总榜尚未配置任何环节权重")
	ErrNotFound       = newError(40400, "not_found", "资源不存在")
	ErrServerInternal = newError(50000, "internal_error", "服务器内部错误")
	ErrDatabase       = newError(50001, "database_error", "数据库错误")
	ErrAggregation    = newError(50002, "aggregation_error", "failed to load leaderboard")
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code   int32  `json:"code"`
	Kind   string `json:"error,omitempty"`
	Msg    string `json:"message"`
	Origin string `json:"origin,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// Success 成功响应，data 可省略
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{
		Code: CodeSuccess,
		Msg:  "success",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 失败响应，非 *Error 的错误按服务器内部错误处理
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}

	c.Set(ErrorContextKey, e)
	sentry.CaptureException(c, e)

	body := ResponseBody{
		Code: e.Code,
		Kind: e.Kind,
		Msg:  e.Message,
	}
	// 原始错误仅在 debug 模式返回
	if config.Get().Mode == config.ModeDebug {
		body.Origin = e.Origin
	}
	c.AbortWithStatusJSON(e.HTTPStatus(), body)
}

// Recovery 捕获 panic 并返回统一错误，需配合 defer 使用
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		var err error
		switch v := r.(type) {
		case error:
			err = v
		default:
			err = fmt.Errorf("%v", v)
		}
		Fail(c, ErrServerInternal.WithOrigin(err))
	}
}

// BindError 区分请求体格式错误与字段校验失败
func BindError(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ErrValidation.WithOrigin(err)
	}
	return ErrInvalidRequest.WithOrigin(err)
}
