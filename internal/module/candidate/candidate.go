package candidate

import (
	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/tools"

	"github.com/gin-gonic/gin"
)

type CandidateCreateReq struct {
	Number string `json:"number" binding:"max=20"`
	Name   string `json:"name" binding:"required,max=100"`
}

type PairCandidateCreateReq struct {
	Number     string `json:"number" binding:"max=20"`
	Name       string `json:"name" binding:"required,max=100"`         // 组合名
	MaleName   string `json:"male_name" binding:"required,max=100"`   // 男方
	FemaleName string `json:"female_name" binding:"required,max=100"` // 女方
}

func CreateCandidate(c *gin.Context) {
	var req CandidateCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	candidate := model.Candidate{Number: req.Number, Name: req.Name}
	if err := database.DB.Create(&candidate).Error; err != nil {
		log.Error("创建选手失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("选手创建成功", "candidate_id", candidate.ID, "name", candidate.Name)
	response.Success(c, candidate)
}

func ListCandidates(c *gin.Context) {
	var candidates []model.Candidate
	offset, limit := tools.GetPage(c)
	if err := database.DB.Order("id").Offset(offset).Limit(limit).Find(&candidates).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, candidates)
}

func CreatePairCandidate(c *gin.Context) {
	var req PairCandidateCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	pair := model.PairCandidate{
		Number:     req.Number,
		Name:       req.Name,
		MaleName:   req.MaleName,
		FemaleName: req.FemaleName,
	}
	if err := database.DB.Create(&pair).Error; err != nil {
		log.Error("创建组合失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("组合创建成功", "pair_candidate_id", pair.ID, "name", pair.Name)
	response.Success(c, pair)
}

func ListPairCandidates(c *gin.Context) {
	var pairs []model.PairCandidate
	offset, limit := tools.GetPage(c)
	if err := database.DB.Order("id").Offset(offset).Limit(limit).Find(&pairs).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, pairs)
}
