// Package tracing 提供 Sentry 性能追踪的集成，包含 GORM 查询与榜单计算的 span
package tracing

import (
	"context"

	"pageant-scoring-system/config"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回携带 Sentry span 的 context，可直接交给 GORM
//
//	database.DB.WithContext(tracing.ContextWithSpan(c)).Find(&scores)
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil {
		return context.Background()
	}
	// sentrygin 中间件已将 span 写入 request context
	return c.Request.Context()
}

// StartSpan 在当前请求的 transaction 下创建子 span，返回子 context 与结束函数
// 没有父 span 时原样返回 ctx
//
//	ctx, finish := tracing.StartSpan(ctx, "leaderboard.compute", "overall")
//	defer finish()
func StartSpan(ctx context.Context, operation, description string) (context.Context, func()) {
	parentSpan := sentry.SpanFromContext(ctx)
	if parentSpan == nil {
		return ctx, func() {}
	}

	span := parentSpan.StartChild(operation)
	span.Description = description
	return span.Context(), span.Finish
}
