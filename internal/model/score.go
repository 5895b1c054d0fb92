package model

import "pageant-scoring-system/internal/scoring"

// Score 评委对单人选手某评分项的打分，Value 已按评分项权重折算
// (评委, 选手, 环节, 评分项) 唯一，重复提交覆盖
type Score struct {
	Record
	JudgeID     uint    `gorm:"not null;uniqueIndex:idx_score_tuple,priority:1" json:"judge_id"`
	CandidateID uint    `gorm:"not null;uniqueIndex:idx_score_tuple,priority:2" json:"candidate_id"`
	SegmentID   uint    `gorm:"not null;uniqueIndex:idx_score_tuple,priority:3" json:"segment_id"`
	CriterionID uint    `gorm:"not null;uniqueIndex:idx_score_tuple,priority:4" json:"criterion_id"`
	Value       float64 `gorm:"not null" json:"value"`

	Judge     *Judge     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Candidate *Candidate `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Segment   *Segment   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Criterion *Criterion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// PairScore 组合赛打分，性别是唯一键的一部分
type PairScore struct {
	Record
	JudgeID         uint           `gorm:"not null;uniqueIndex:idx_pair_score_tuple,priority:1" json:"judge_id"`
	PairCandidateID uint           `gorm:"not null;uniqueIndex:idx_pair_score_tuple,priority:2" json:"pair_candidate_id"`
	Gender          scoring.Gender `gorm:"type:varchar(10);not null;uniqueIndex:idx_pair_score_tuple,priority:3" json:"gender"`
	PairSegmentID   uint           `gorm:"not null;uniqueIndex:idx_pair_score_tuple,priority:4" json:"pair_segment_id"`
	PairCriterionID uint           `gorm:"not null;uniqueIndex:idx_pair_score_tuple,priority:5" json:"pair_criterion_id"`
	Value           float64        `gorm:"not null" json:"value"`

	Judge         *Judge         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PairCandidate *PairCandidate `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PairSegment   *PairSegment   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PairCriterion *PairCriterion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
