package judge

import "github.com/gin-gonic/gin"

func (*ModuleJudge) InitRouter(r *gin.RouterGroup) {
	r.POST("/judges", CreateJudge)
	r.GET("/judges", ListJudges)
}
