package pairleaderboard

import (
	"fmt"

	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/metrics"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/scoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightItem struct {
	SegmentID uint     `json:"segment_id" binding:"required"`
	Gender    string   `json:"gender" binding:"required,oneof=male female"`
	Weight    *float64 `json:"weight" binding:"required,gte=0,lte=100"`
}

// WeightSaveReq 完整的组合赛权重配置，两个性别一起提交
type WeightSaveReq struct {
	Segments []WeightItem `json:"segments" binding:"required,dive"`
}

type WeightResp struct {
	Male   []scoring.SegmentWeight `json:"male"`
	Female []scoring.SegmentWeight `json:"female"`
}

var genders = []scoring.Gender{scoring.GenderMale, scoring.GenderFemale}

// StoreWeights 整体替换组合赛总榜权重，键为 (环节, 性别)，整个替换在一个事务内完成
func StoreWeights(c *gin.Context) {
	var req WeightSaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	type key struct {
		segment uint
		gender  scoring.Gender
	}
	seen := make(map[key]bool, len(req.Segments))
	idsByGender := make(map[scoring.Gender][]uint, len(genders))
	segmentIDs := make(map[uint]bool)
	rows := make([]model.PairOverallWeight, 0, len(req.Segments))
	for _, it := range req.Segments {
		k := key{it.SegmentID, scoring.Gender(it.Gender)}
		if seen[k] {
			response.Fail(c, response.ErrValidation.WithTips(fmt.Sprintf("duplicate segment %d for %s", it.SegmentID, it.Gender)))
			return
		}
		seen[k] = true
		idsByGender[k.gender] = append(idsByGender[k.gender], it.SegmentID)
		segmentIDs[it.SegmentID] = true
		rows = append(rows, model.PairOverallWeight{PairSegmentID: it.SegmentID, Gender: k.gender, Weight: *it.Weight})
	}

	db := database.DB.WithContext(c.Request.Context())
	if len(segmentIDs) > 0 {
		ids := make([]uint, 0, len(segmentIDs))
		for id := range segmentIDs {
			ids = append(ids, id)
		}
		var n int64
		if err := db.Model(&model.PairSegment{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if n != int64(len(ids)) {
			response.Fail(c, response.ErrNotFound.WithTips("pair segment"))
			return
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, g := range genders {
			del := tx.Where("gender = ?", g)
			if ids := idsByGender[g]; len(ids) > 0 {
				del = del.Where("pair_segment_id NOT IN ?", ids)
			}
			if err := del.Delete(&model.PairOverallWeight{}).Error; err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_segment_id"}, {Name: "gender"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Error("保存组合总榜权重失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	for _, g := range genders {
		metrics.Default().WeightsSaved(scoring.Scope{Gender: g}.String())
	}
	log.Info("组合总榜权重已保存", "male", idsByGender[scoring.GenderMale], "female", idsByGender[scoring.GenderFemale])
	GetWeights(c)
}

// GetWeights 按性别分组返回当前组合赛总榜权重
func GetWeights(c *gin.Context) {
	src := Source{DB: database.DB}
	var resp WeightResp
	for _, g := range genders {
		weights, err := src.SegmentWeights(c.Request.Context(), scoring.Scope{Gender: g})
		if err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		switch g {
		case scoring.GenderMale:
			resp.Male = weights
		case scoring.GenderFemale:
			resp.Female = weights
		}
	}
	response.Success(c, resp)
}
