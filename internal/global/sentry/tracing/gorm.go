package tracing

import (
	"time"

	"pageant-scoring-system/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormStateKey   = "sentry:state"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 为每次数据库操作创建 span，挂在请求或榜单计算的 span 之下
type GormTracingPlugin struct {
	// slowThreshold 慢查询阈值，0 表示记录所有查询
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	threshold := time.Duration(config.Get().Sentry.Tracing.DBSlowThresholdMs) * time.Millisecond
	return &GormTracingPlugin{slowThreshold: threshold}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

type spanState struct {
	start time.Time
	span  *sentry.Span
}

type registerFunc func(name string, fn func(*gorm.DB)) error

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		kind          string
		before, after registerFunc
	}{
		{"create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
		{"row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"raw", cb.Raw().Before("gorm:raw").Register, cb.Raw().After("gorm:raw").Register},
	}
	for _, h := range hooks {
		if err := h.before(callbackPrefix+":before_"+h.kind, p.start("db.sql."+h.kind)); err != nil {
			return err
		}
		if err := h.after(callbackPrefix+":after_"+h.kind, p.finish); err != nil {
			return err
		}
	}
	return nil
}

func (p *GormTracingPlugin) start(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		state := &spanState{start: time.Now()}
		if parent := sentry.SpanFromContext(db.Statement.Context); parent != nil {
			state.span = parent.StartChild(operation)
			state.span.Description = tableOf(db)
			state.span.SetData("db.system", db.Dialector.Name())
			db.Statement.Context = state.span.Context()
		}
		db.InstanceSet(gormStateKey, state)
	}
}

func (p *GormTracingPlugin) finish(db *gorm.DB) {
	if db.Statement == nil {
		return
	}
	v, ok := db.InstanceGet(gormStateKey)
	if !ok {
		return
	}
	state, ok := v.(*spanState)
	if !ok || state.span == nil {
		return
	}

	// 未超过阈值的 span 不发送
	if p.slowThreshold > 0 && time.Since(state.start) < p.slowThreshold {
		state.span.Sampled = sentry.SampledFalse
	}
	state.span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		state.span.Status = sentry.SpanStatusInternalError
		state.span.SetData("db.error", db.Error.Error())
	} else {
		state.span.Status = sentry.SpanStatusOK
	}
	state.span.Finish()
}

// tableOf 用表名作描述，不记录完整 SQL
func tableOf(db *gorm.DB) string {
	if db.Statement == nil || db.Statement.Table == "" {
		return "unknown"
	}
	return db.Statement.Table
}
