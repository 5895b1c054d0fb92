package candidate

import "github.com/gin-gonic/gin"

func (*ModuleCandidate) InitRouter(r *gin.RouterGroup) {
	r.POST("/candidates", CreateCandidate)
	r.GET("/candidates", ListCandidates)

	r.POST("/pair-candidates", CreatePairCandidate)
	r.GET("/pair-candidates", ListPairCandidates)
}
