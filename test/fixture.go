package test

import (
	"net/http"
	"testing"

	"pageant-scoring-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Criterion 创建环节时的评分项
type Criterion struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Score 一条原始打分
type Score struct {
	SegmentID   uint    `json:"segment_id"`
	CriterionID uint    `json:"criterion_id"`
	Score       float64 `json:"score"`
}

func CreateJudge(t *testing.T, r *gin.Engine, name string) model.Judge {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/judges", gin.H{"name": name})
	return Data[model.Judge](t, resp)
}

func CreateCandidate(t *testing.T, r *gin.Engine, name string) model.Candidate {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/candidates", gin.H{"name": name})
	return Data[model.Candidate](t, resp)
}

func CreatePairCandidate(t *testing.T, r *gin.Engine, name, male, female string) model.PairCandidate {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/pair-candidates", gin.H{
		"name":        name,
		"male_name":   male,
		"female_name": female,
	})
	return Data[model.PairCandidate](t, resp)
}

func CreateSegment(t *testing.T, r *gin.Engine, name string, criteria ...Criterion) model.Segment {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/segments", gin.H{"name": name, "criteria": criteria})
	segment := Data[model.Segment](t, resp)
	require.Len(t, segment.Criteria, len(criteria))
	return segment
}

func CreatePairSegment(t *testing.T, r *gin.Engine, name string, male, female []Criterion) model.PairSegment {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/pair-segments", gin.H{
		"name":            name,
		"male_criteria":   male,
		"female_criteria": female,
	})
	segment := Data[model.PairSegment](t, resp)
	require.Len(t, segment.Criteria, len(male)+len(female))
	return segment
}

// CriterionID 按名称和性别查找组合环节的评分项
func CriterionID(t *testing.T, s model.PairSegment, gender, name string) uint {
	t.Helper()
	for _, cr := range s.Criteria {
		if string(cr.Gender) == gender && cr.Name == name {
			return cr.ID
		}
	}
	require.Failf(t, "criterion not found", "%s/%s", gender, name)
	return 0
}

// SubmitScores gender 为空时为单人赛
func SubmitScores(t *testing.T, r *gin.Engine, judgeID, subjectID uint, gender string, scores ...Score) {
	t.Helper()
	_, resp := Do(t, r, http.MethodPost, "/scores", gin.H{
		"judge_id":   judgeID,
		"subject_id": subjectID,
		"gender":     gender,
		"scores":     scores,
	})
	NoError(t, resp)
}
