package judge

import (
	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/tools"

	"github.com/gin-gonic/gin"
)

type JudgeCreateReq struct {
	Name string `json:"name" binding:"required,max=100"`
}

func CreateJudge(c *gin.Context) {
	var req JudgeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	judge := model.Judge{Name: req.Name}
	if err := database.DB.Create(&judge).Error; err != nil {
		log.Error("创建评委失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("评委创建成功", "judge_id", judge.ID, "name", judge.Name)
	response.Success(c, judge)
}

func ListJudges(c *gin.Context) {
	var judges []model.Judge
	offset, limit := tools.GetPage(c)
	if err := database.DB.Order("id").Offset(offset).Limit(limit).Find(&judges).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, judges)
}
