package model

import "pageant-scoring-system/internal/scoring"

// Segment 单人赛环节
type Segment struct {
	Model
	Name     string      `gorm:"type:varchar(100);not null" json:"name"`
	Criteria []Criterion `gorm:"constraint:OnDelete:CASCADE" json:"criteria"`
}

// Criterion 环节下的评分项，同一环节内权重之和为 100
type Criterion struct {
	Model
	SegmentID uint    `gorm:"not null;index" json:"segment_id"`
	Name      string  `gorm:"type:varchar(100);not null" json:"name"`
	Weight    float64 `gorm:"not null" json:"weight"`
}

// PairSegment 组合赛环节，男女各有一套评分项与展示名
type PairSegment struct {
	Model
	Name       string          `gorm:"type:varchar(100);not null" json:"name"`
	MaleName   string          `gorm:"type:varchar(100)" json:"male_name"`
	FemaleName string          `gorm:"type:varchar(100)" json:"female_name"`
	Criteria   []PairCriterion `gorm:"constraint:OnDelete:CASCADE" json:"criteria"`
}

// DisplayName 指定性别的展示名，未设置时用环节名
func (s *PairSegment) DisplayName(g scoring.Gender) string {
	name := ""
	switch g {
	case scoring.GenderMale:
		name = s.MaleName
	case scoring.GenderFemale:
		name = s.FemaleName
	}
	if name == "" {
		return s.Name
	}
	return name
}

// PairCriterion 组合赛评分项，同一环节同一性别内权重之和为 100
type PairCriterion struct {
	Model
	PairSegmentID uint           `gorm:"not null;index" json:"pair_segment_id"`
	Gender        scoring.Gender `gorm:"type:varchar(10);not null" json:"gender"`
	Name          string         `gorm:"type:varchar(100);not null" json:"name"`
	Weight        float64        `gorm:"not null" json:"weight"`
}
