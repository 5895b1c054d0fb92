package segment

import "github.com/gin-gonic/gin"

func (*ModuleSegment) InitRouter(r *gin.RouterGroup) {
	r.POST("/segments", CreateSegment)
	r.GET("/segments", ListSegments)
	r.GET("/segments/:id", GetSegment)

	r.POST("/pair-segments", CreatePairSegment)
	r.GET("/pair-segments", ListPairSegments)
	r.GET("/pair-segments/:id", GetPairSegment)
}
