package model

import "pageant-scoring-system/internal/scoring"

// OverallWeight 单人赛总榜中某环节的权重，整表随每次保存整体替换
type OverallWeight struct {
	Record
	SegmentID uint    `gorm:"not null;uniqueIndex" json:"segment_id"`
	Weight    float64 `gorm:"not null" json:"weight"`

	Segment *Segment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// PairOverallWeight 组合赛总榜权重，按 (环节, 性别) 区分
type PairOverallWeight struct {
	Record
	PairSegmentID uint           `gorm:"not null;uniqueIndex:idx_pair_weight,priority:1" json:"pair_segment_id"`
	Gender        scoring.Gender `gorm:"type:varchar(10);not null;uniqueIndex:idx_pair_weight,priority:2" json:"gender"`
	Weight        float64        `gorm:"not null" json:"weight"`

	PairSegment *PairSegment `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
