// Package scoring 榜单计算核心：评委聚合、分数归一化、环节加权与竞赛排名
//
// 数据流：ScoreSource → Aggregate（按环节）→ Normalize → Compose（总榜）→ Rank
// 所有计算都是当前数据快照上的纯函数，不持有任何状态。
package scoring

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Gender 组合赛的性别分区，单人赛为空
type Gender string

const (
	GenderNone   Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender 解析路由或请求体中的性别，空字符串视为单人赛
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderNone:
		return GenderNone, nil
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	}
	return GenderNone, errors.Errorf("unknown gender %q", s)
}

// Scope 一次榜单查询的范围：单人赛，或组合赛中的某一性别
// 分数、权重、排名都不会跨越 Scope
type Scope struct {
	Gender Gender
}

func (s Scope) Paired() bool {
	return s.Gender != GenderNone
}

func (s Scope) String() string {
	if !s.Paired() {
		return "solo"
	}
	return "pair:" + string(s.Gender)
}

// Subject 被评分的对象：单人选手，或组合中某一性别的成员
type Subject struct {
	ID     uint   `json:"subject_id"`
	Name   string `json:"name"`
	Member string `json:"member,omitempty"`
}

// Segment 比赛环节
type Segment struct {
	ID   uint   `json:"segment_id"`
	Name string `json:"segment_name"`
}

// ScoreRow 一位评委对一个对象在某环节某评分项上的分数，Value 已乘过评分项权重
type ScoreRow struct {
	JudgeID     uint
	JudgeName   string
	SubjectID   uint
	SegmentID   uint
	CriterionID uint
	Value       float64
}

// SegmentWeight 环节在总榜中的权重（0-100）
type SegmentWeight struct {
	SegmentID   uint    `json:"segment_id"`
	SegmentName string  `json:"segment_name"`
	Weight      float64 `json:"weight"`
}

// ScoreSource 由单人赛与组合赛的存储层分别实现，引擎只写一次
type ScoreSource interface {
	// Subjects 返回范围内所有参赛对象
	Subjects(ctx context.Context, scope Scope) ([]Subject, error)
	// Segment 查询环节，不存在时返回 ErrSegmentNotFound
	Segment(ctx context.Context, scope Scope, segmentID uint) (Segment, error)
	// Scores 返回给定环节内的全部分数行
	Scores(ctx context.Context, scope Scope, segmentIDs ...uint) ([]ScoreRow, error)
	// SegmentWeights 返回总榜权重配置，未配置的环节不出现
	SegmentWeights(ctx context.Context, scope Scope) ([]SegmentWeight, error)
}

var (
	// ErrNotConfigured 总榜没有任何环节权重，调用方需要单独展示"未配置"
	ErrNotConfigured = errors.New("no segments configured for overall leaderboard")
	// ErrSegmentNotFound 环节不存在
	ErrSegmentNotFound = errors.New("segment not found")
	// ErrAggregation 读取或计算失败，不重试、不返回部分结果
	ErrAggregation = errors.New("failed to load leaderboard")
)

type aggregationError struct {
	cause error
}

func (e *aggregationError) Error() string {
	return ErrAggregation.Error() + ": " + e.cause.Error()
}

func (e *aggregationError) Is(target error) bool {
	return target == ErrAggregation
}

func (e *aggregationError) Unwrap() error {
	return e.cause
}

// aggregationFailure 包装存储层错误；已是 ErrSegmentNotFound 的保持原样
func aggregationFailure(err error, msg string) error {
	if errors.Is(err, ErrSegmentNotFound) {
		return err
	}
	return errors.WithStack(&aggregationError{cause: errors.WithMessage(err, msg)})
}
