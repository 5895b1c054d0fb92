package score

import (
	"fmt"

	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/metrics"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/global/sentry/tracing"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/scoring"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 评委原始打分为十分制
const rawScoreScale = 10.0

type ScoreItem struct {
	SegmentID   uint     `json:"segment_id" binding:"required"`
	CriterionID uint     `json:"criterion_id" binding:"required"`
	Score       *float64 `json:"score" binding:"required,gte=0,lte=10"`
}

// ScoreSaveReq gender 为空时是单人赛，subject_id 为选手 ID；否则为组合 ID
type ScoreSaveReq struct {
	JudgeID   uint        `json:"judge_id" binding:"required"`
	SubjectID uint        `json:"subject_id" binding:"required"`
	Gender    string      `json:"gender" binding:"omitempty,oneof=male female"`
	Scores    []ScoreItem `json:"scores" binding:"required,min=1,dive"`
}

type ScoreListReq struct {
	JudgeID   uint   `form:"judge_id"`
	SubjectID uint   `form:"subject_id"`
	SegmentID uint   `form:"segment_id"`
	Gender    string `form:"gender" binding:"omitempty,oneof=male female"`
}

// weighted 折算后入库：score × 评分项权重 / 10
func weighted(score, criterionWeight float64) float64 {
	return score * criterionWeight / rawScoreScale
}

// dedupe 同一请求内同一评分项重复出现时以最后一次为准
func dedupe(items []ScoreItem) []ScoreItem {
	type key struct{ segment, criterion uint }
	pos := make(map[key]int, len(items))
	out := make([]ScoreItem, 0, len(items))
	for _, it := range items {
		k := key{it.SegmentID, it.CriterionID}
		if i, ok := pos[k]; ok {
			out[i] = it
			continue
		}
		pos[k] = len(out)
		out = append(out, it)
	}
	return out
}

func exists(db *gorm.DB, m any, id uint) (bool, error) {
	var n int64
	err := db.Model(m).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func SaveScores(c *gin.Context) {
	var req ScoreSaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}
	gender, err := scoring.ParseGender(req.Gender)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	scope := scoring.Scope{Gender: gender}
	items := dedupe(req.Scores)

	ctx, finish := tracing.StartSpan(tracing.ContextWithSpan(c), "scores.save", scope.String())
	defer finish()
	db := database.DB.WithContext(ctx)

	var n int
	var e *response.Error
	if scope.Paired() {
		n, e = savePairScores(db, req, gender, items)
	} else {
		n, e = saveSoloScores(db, req, items)
	}
	if e != nil {
		response.Fail(c, e)
		return
	}

	metrics.Default().ScoresSaved(scope.String(), n)
	log.Info("评分已保存",
		"judge_id", req.JudgeID,
		"subject_id", req.SubjectID,
		"scope", scope.String(),
		"rows", n,
	)
	response.Success(c, gin.H{"saved": n})
}

func saveSoloScores(db *gorm.DB, req ScoreSaveReq, items []ScoreItem) (int, *response.Error) {
	if e := mustExist(db, &model.Judge{}, req.JudgeID, "judge"); e != nil {
		return 0, e
	}
	if e := mustExist(db, &model.Candidate{}, req.SubjectID, "candidate"); e != nil {
		return 0, e
	}

	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.CriterionID
	}
	var criteria []model.Criterion
	if err := db.Where("id IN ?", ids).Find(&criteria).Error; err != nil {
		return 0, response.ErrDatabase.WithOrigin(err)
	}
	byID := make(map[uint]model.Criterion, len(criteria))
	for _, cr := range criteria {
		byID[cr.ID] = cr
	}

	rows := make([]model.Score, 0, len(items))
	for _, it := range items {
		cr, ok := byID[it.CriterionID]
		if !ok {
			return 0, response.ErrNotFound.WithTips(fmt.Sprintf("criterion %d", it.CriterionID))
		}
		if cr.SegmentID != it.SegmentID {
			return 0, response.ErrValidation.WithTips(fmt.Sprintf("criterion %d does not belong to segment %d", it.CriterionID, it.SegmentID))
		}
		rows = append(rows, model.Score{
			JudgeID:     req.JudgeID,
			CandidateID: req.SubjectID,
			SegmentID:   it.SegmentID,
			CriterionID: it.CriterionID,
			Value:       weighted(*it.Score, cr.Weight),
		})
	}

	// 同一评委重复提交覆盖旧值，不做冲突检测
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "judge_id"}, {Name: "candidate_id"}, {Name: "segment_id"}, {Name: "criterion_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Error("保存评分失败", "error", err, "judge_id", req.JudgeID, "candidate_id", req.SubjectID)
		return 0, response.ErrDatabase.WithOrigin(err)
	}
	return len(rows), nil
}

func savePairScores(db *gorm.DB, req ScoreSaveReq, gender scoring.Gender, items []ScoreItem) (int, *response.Error) {
	if e := mustExist(db, &model.Judge{}, req.JudgeID, "judge"); e != nil {
		return 0, e
	}
	if e := mustExist(db, &model.PairCandidate{}, req.SubjectID, "pair candidate"); e != nil {
		return 0, e
	}

	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.CriterionID
	}
	var criteria []model.PairCriterion
	if err := db.Where("id IN ?", ids).Find(&criteria).Error; err != nil {
		return 0, response.ErrDatabase.WithOrigin(err)
	}
	byID := make(map[uint]model.PairCriterion, len(criteria))
	for _, cr := range criteria {
		byID[cr.ID] = cr
	}

	rows := make([]model.PairScore, 0, len(items))
	for _, it := range items {
		cr, ok := byID[it.CriterionID]
		if !ok {
			return 0, response.ErrNotFound.WithTips(fmt.Sprintf("pair criterion %d", it.CriterionID))
		}
		if cr.PairSegmentID != it.SegmentID || cr.Gender != gender {
			return 0, response.ErrValidation.WithTips(fmt.Sprintf("criterion %d does not belong to pair segment %d (%s)", it.CriterionID, it.SegmentID, gender))
		}
		rows = append(rows, model.PairScore{
			JudgeID:         req.JudgeID,
			PairCandidateID: req.SubjectID,
			Gender:          gender,
			PairSegmentID:   it.SegmentID,
			PairCriterionID: it.CriterionID,
			Value:           weighted(*it.Score, cr.Weight),
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "judge_id"}, {Name: "pair_candidate_id"}, {Name: "gender"},
				{Name: "pair_segment_id"}, {Name: "pair_criterion_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		log.Error("保存组合评分失败", "error", err, "judge_id", req.JudgeID, "pair_candidate_id", req.SubjectID)
		return 0, response.ErrDatabase.WithOrigin(err)
	}
	return len(rows), nil
}

func mustExist(db *gorm.DB, m any, id uint, what string) *response.Error {
	ok, err := exists(db, m, id)
	if err != nil {
		return response.ErrDatabase.WithOrigin(err)
	}
	if !ok {
		return response.ErrNotFound.WithTips(fmt.Sprintf("%s %d", what, id))
	}
	return nil
}

// ListScores 查询已保存的分数，便于评委回看
func ListScores(c *gin.Context) {
	var req ScoreListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.BindError(err))
		return
	}

	if req.Gender == "" {
		query := database.DB.Model(&model.Score{})
		if req.JudgeID != 0 {
			query = query.Where("judge_id = ?", req.JudgeID)
		}
		if req.SubjectID != 0 {
			query = query.Where("candidate_id = ?", req.SubjectID)
		}
		if req.SegmentID != 0 {
			query = query.Where("segment_id = ?", req.SegmentID)
		}
		var scores []model.Score
		if err := query.Order("id").Find(&scores).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		response.Success(c, scores)
		return
	}

	query := database.DB.Model(&model.PairScore{}).Where("gender = ?", req.Gender)
	if req.JudgeID != 0 {
		query = query.Where("judge_id = ?", req.JudgeID)
	}
	if req.SubjectID != 0 {
		query = query.Where("pair_candidate_id = ?", req.SubjectID)
	}
	if req.SegmentID != 0 {
		query = query.Where("pair_segment_id = ?", req.SegmentID)
	}
	var scores []model.PairScore
	if err := query.Order("id").Find(&scores).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, scores)
}
