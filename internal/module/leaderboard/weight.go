package leaderboard

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
	Weight    *float64 `json:"weight" binding:"required,gte=0,lte=100"`
}

// WeightSaveReq 提交的是完整配置，未出现的环节会被移出总榜；空数组表示清空
type WeightSaveReq struct {
	Segments []WeightItem `json:"segments" binding:"required,unique=SegmentID,dive"`
}

// SaveWeights 整体替换单人赛总榜权重：删除不在新配置中的行，其余 upsert，在同一事务内完成
func SaveWeights(c *gin.Context) {
	var req WeightSaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	ids := make([]uint, len(req.Segments))
	rows := make([]model.OverallWeight, len(req.Segments))
	for i, it := range req.Segments {
		ids[i] = it.SegmentID
		rows[i] = model.OverallWeight{SegmentID: it.SegmentID, Weight: *it.Weight}
	}

	db := database.DB.WithContext(c.Request.Context())
	if len(ids) > 0 {
		var n int64
		if err := db.Model(&model.Segment{}).Where("id IN ?", ids).Count(&n).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if n != int64(len(ids)) {
			response.Fail(c, response.ErrNotFound.WithTips(fmt.Sprintf("segments %v", ids)))
			return
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		del := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if len(ids) > 0 {
			del = del.Where("segment_id NOT IN ?", ids)
		}
		if err := del.Delete(&model.OverallWeight{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "segment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weight", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Error("保存总榜权重失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	metrics.Default().WeightsSaved(scoring.Scope{}.String())
	log.Info("总榜权重已保存", "segments", ids)
	GetWeights(c)
}

// GetWeights 当前生效的单人赛总榜权重
func GetWeights(c *gin.Context) {
	weights, err := Source{DB: database.DB}.SegmentWeights(c.Request.Context(), scoring.Scope{})
	if err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if weights == nil {
		weights = []scoring.SegmentWeight{}
	}
	response.Success(c, gin.H{"segments": weights})
}
