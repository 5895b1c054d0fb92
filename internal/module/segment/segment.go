package segment

import (
	"fmt"
	"math"
	"strconv"

	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 浮点权重求和的容差
const weightEpsilon = 1e-6

type CriterionReq struct {
	Name   string  `json:"name" binding:"required,max=100"`
	Weight float64 `json:"weight" binding:"gte=0,lte=100"`
}

type SegmentCreateReq struct {
	Name     string         `json:"name" binding:"required,max=100"`
	Criteria []CriterionReq `json:"criteria" binding:"required,min=1,dive"`
}

type PairSegmentCreateReq struct {
	Name           string         `json:"name" binding:"required,max=100"`
	MaleName       string         `json:"male_name" binding:"max=100"`
	FemaleName     string         `json:"female_name" binding:"max=100"`
	MaleCriteria   []CriterionReq `json:"male_criteria" binding:"required,min=1,dive"`
	FemaleCriteria []CriterionReq `json:"female_criteria" binding:"required,min=1,dive"`
}

// checkWeightSum 同一环节（组合赛为同一性别）的评分项权重之和必须为 100，只在创建时校验
func checkWeightSum(label string, criteria []CriterionReq) *response.Error {
	sum := 0.0
	for _, cr := range criteria {
		sum += cr.Weight
	}
	if math.Abs(sum-100) > weightEpsilon {
		return response.ErrValidation.WithTips(fmt.Sprintf("%s 评分项权重之和应为 100，当前为 %s", label, strconv.FormatFloat(sum, 'f', -1, 64)))
	}
	return nil
}

func CreateSegment(c *gin.Context) {
	var req SegmentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}
	if err := checkWeightSum("criteria", req.Criteria); err != nil {
		log.Warn("评分项权重之和不为 100", "name", req.Name)
		response.Fail(c, err)
		return
	}

	segment := model.Segment{Name: req.Name}
	for _, cr := range req.Criteria {
		segment.Criteria = append(segment.Criteria, model.Criterion{Name: cr.Name, Weight: cr.Weight})
	}
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&segment).Error
	}); err != nil {
		log.Error("创建环节失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("环节创建成功", "segment_id", segment.ID, "name", segment.Name, "criteria", len(segment.Criteria))
	response.Success(c, segment)
}

func ListSegments(c *gin.Context) {
	var segments []model.Segment
	if err := database.DB.Preload("Criteria").Order("id").Find(&segments).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, segments)
}

func GetSegment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var segment model.Segment
	if err := database.DB.Preload("Criteria").First(&segment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("segment"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, segment)
}

func CreatePairSegment(c *gin.Context) {
	var req PairSegmentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}
	if err := checkWeightSum("male_criteria", req.MaleCriteria); err != nil {
		response.Fail(c, err)
		return
	}
	if err := checkWeightSum("female_criteria", req.FemaleCriteria); err != nil {
		response.Fail(c, err)
		return
	}

	segment := model.PairSegment{
		Name:       req.Name,
		MaleName:   req.MaleName,
		FemaleName: req.FemaleName,
	}
	for _, cr := range req.MaleCriteria {
		segment.Criteria = append(segment.Criteria, model.PairCriterion{Gender: scoring.GenderMale, Name: cr.Name, Weight: cr.Weight})
	}
	for _, cr := range req.FemaleCriteria {
		segment.Criteria = append(segment.Criteria, model.PairCriterion{Gender: scoring.GenderFemale, Name: cr.Name, Weight: cr.Weight})
	}
	if err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&segment).Error
	}); err != nil {
		log.Error("创建组合环节失败", "error", err, "name", req.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("组合环节创建成功", "pair_segment_id", segment.ID, "name", segment.Name)
	response.Success(c, segment)
}

func ListPairSegments(c *gin.Context) {
	var segments []model.PairSegment
	if err := database.DB.Preload("Criteria").Order("id").Find(&segments).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, segments)
}

func GetPairSegment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var segment model.PairSegment
	if err := database.DB.Preload("Criteria").First(&segment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrNotFound.WithTips("pair segment"))
			return
		}
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, segment)
}
