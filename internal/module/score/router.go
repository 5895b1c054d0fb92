package score

import "github.com/gin-gonic/gin"

func (*ModuleScore) InitRouter(r *gin.RouterGroup) {
	// 评委身份由请求体显式给出
	r.POST("/scores", SaveScores)
	r.GET("/scores", ListScores)
}
