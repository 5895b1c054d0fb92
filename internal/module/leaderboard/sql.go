package leaderboard

import (
	"context"

	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/scoring"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Source 单人赛的 scoring.ScoreSource 实现，scope 恒为 solo
type Source struct {
	DB *gorm.DB
}

func (s Source) Subjects(ctx context.Context, _ scoring.Scope) ([]scoring.Subject, error) {
	var candidates []model.Candidate
	if err := s.DB.WithContext(ctx).Order("id").Find(&candidates).Error; err != nil {
		return nil, errors.WithStack(err)
	}
	out := make([]scoring.Subject, len(candidates))
	for i, c := range candidates {
		out[i] = scoring.Subject{ID: c.ID, Name: c.Name}
	}
	return out, nil
}

func (s Source) Segment(ctx context.Context, _ scoring.Scope, segmentID uint) (scoring.Segment, error) {
	var segment model.Segment
	if err := s.DB.WithContext(ctx).First(&segment, segmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return scoring.Segment{}, errors.WithStack(scoring.ErrSegmentNotFound)
		}
		return scoring.Segment{}, errors.WithStack(err)
	}
	return scoring.Segment{ID: segment.ID, Name: segment.Name}, nil
}

// SegmentIDByName 按环节名查找，重名时取最早创建的
func (s Source) SegmentIDByName(ctx context.Context, name string) (uint, error) {
	var segment model.Segment
	if err := s.DB.WithContext(ctx).Where("name = ?", name).Order("id").First(&segment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errors.WithStack(scoring.ErrSegmentNotFound)
		}
		return 0, errors.WithStack(err)
	}
	return segment.ID, nil
}

// Scores 已删除评委的分数不参与计算
func (s Source) Scores(ctx context.Context, _ scoring.Scope, segmentIDs ...uint) ([]scoring.ScoreRow, error) {
	var rows []scoring.ScoreRow
	if len(segmentIDs) == 0 {
		return rows, nil
	}
	err := s.DB.WithContext(ctx).
		Model(&model.Score{}).
		Select("score.judge_id, judge.name AS judge_name, score.candidate_id AS subject_id, " +
			"score.segment_id, score.criterion_id, score.value").
		Joins("JOIN judge ON judge.id = score.judge_id AND judge.deleted_at IS NULL").
		Where("score.segment_id IN ?", segmentIDs).
		Order("score.id").
		Scan(&rows).Error
	return rows, errors.WithStack(err)
}

func (s Source) SegmentWeights(ctx context.Context, _ scoring.Scope) ([]scoring.SegmentWeight, error) {
	var weights []scoring.SegmentWeight
	err := s.DB.WithContext(ctx).
		Model(&model.OverallWeight{}).
		Select("overall_weight.segment_id, segment.name AS segment_name, overall_weight.weight").
		Joins("JOIN segment ON segment.id = overall_weight.segment_id AND segment.deleted_at IS NULL").
		Order("overall_weight.segment_id").
		Scan(&weights).Error
	return weights, errors.WithStack(err)
}
