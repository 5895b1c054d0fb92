package pairleaderboard

import "github.com/gin-gonic/gin"

func (*ModulePairLeaderboard) InitRouter(r *gin.RouterGroup) {
	pair := r.Group("/PairLeaderboard")
	{
		pair.GET("/segment/:segment_id/:gender", GetSegment)
		pair.GET("/PairOverAll/:gender", GetOverall)
		pair.GET("/PairOverAll/:gender/export", ExportOverall)

		pair.POST("/store", StoreWeights)
		pair.GET("/config", GetWeights)
	}
}
