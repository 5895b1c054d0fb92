package leaderboard

import "github.com/gin-gonic/gin"

func (*ModuleLeaderboard) InitRouter(r *gin.RouterGroup) {
	board := r.Group("/leaderboard")
	{
		board.GET("/overall", GetOverall)
		board.GET("/overall/export", ExportOverall)
		board.GET("/:segment_id", GetSegment)
	}

	config := r.Group("/overall-leaderboard")
	{
		config.POST("/save", SaveWeights)
		config.GET("/config", GetWeights)
	}
}
