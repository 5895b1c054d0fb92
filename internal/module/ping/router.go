package ping

import (
	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("/ping", Ping)
}

// Ping 存活检查，同时探测数据库连接
func Ping(c *gin.Context) {
	result := gin.H{
		"message":  "pong",
		"version":  version,
		"database": "ok",
	}
	if database.DB == nil {
		result["database"] = "uninitialized"
	} else if sqlDB, err := database.DB.DB(); err != nil {
		result["database"] = "error"
	} else if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		log.Warn("数据库探测失败", "error", err)
		result["database"] = "unreachable"
	}
	response.Success(c, result)
}
