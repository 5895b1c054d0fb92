package model

import "pageant-scoring-system/internal/scoring"

// Candidate 单人赛选手
type Candidate struct {
	Model
	Number string `gorm:"type:varchar(20)" json:"number"`
	Name   string `gorm:"type:varchar(100);not null" json:"name"`
}

// PairCandidate 组合赛选手，男女两位成员共用组合名但分别评分
type PairCandidate struct {
	Model
	Number     string `gorm:"type:varchar(20)" json:"number"`
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	MaleName   string `gorm:"type:varchar(100);not null" json:"male_name"`
	FemaleName string `gorm:"type:varchar(100);not null" json:"female_name"`
}

// MemberName 返回指定性别成员的名字
func (p *PairCandidate) MemberName(g scoring.Gender) string {
	switch g {
	case scoring.GenderMale:
		return p.MaleName
	case scoring.GenderFemale:
		return p.FemaleName
	}
	return ""
}
