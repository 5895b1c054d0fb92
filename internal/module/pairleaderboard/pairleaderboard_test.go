package pairleaderboard_test

import (
	"net/http"
	"strconv"
	"testing"

	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/model"
	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/module/pairleaderboard"
	"pageant-scoring-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pairFixture struct {
	judge   model.Judge
	a, b    model.PairCandidate
	walk    model.PairSegment
	talent  model.PairSegment
	maleW   uint
	femaleW uint
}

func setup(t *testing.T) (*gin.Engine, pairFixture) {
	t.Helper()
	test.SetupDB(t)
	r := test.NewRouter()

	var f pairFixture
	f.judge = test.CreateJudge(t, r, "Judge")
	f.a = test.CreatePairCandidate(t, r, "Pair A", "Adam", "Amy")
	f.b = test.CreatePairCandidate(t, r, "Pair B", "Ben", "Bea")
	f.walk = test.CreatePairSegment(t, r, "Couple Walk",
		[]test.Criterion{{Name: "Walk", Weight: 100}},
		[]test.Criterion{{Name: "Walk", Weight: 100}},
	)
	f.talent = test.CreatePairSegment(t, r, "Talent",
		[]test.Criterion{{Name: "Skill", Weight: 100}},
		[]test.Criterion{{Name: "Skill", Weight: 100}},
	)
	f.maleW = test.CriterionID(t, f.walk, "male", "Walk")
	f.femaleW = test.CriterionID(t, f.walk, "female", "Walk")

	// 男方 A 领先，女方 B 领先
	test.SubmitScores(t, r, f.judge.ID, f.a.ID, "male", test.Score{SegmentID: f.walk.ID, CriterionID: f.maleW, Score: 7})
	test.SubmitScores(t, r, f.judge.ID, f.b.ID, "male", test.Score{SegmentID: f.walk.ID, CriterionID: f.maleW, Score: 6})
	test.SubmitScores(t, r, f.judge.ID, f.a.ID, "female", test.Score{SegmentID: f.walk.ID, CriterionID: f.femaleW, Score: 5})
	test.SubmitScores(t, r, f.judge.ID, f.b.ID, "female", test.Score{SegmentID: f.walk.ID, CriterionID: f.femaleW, Score: 9.5})
	return r, f
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestPairSegmentLeaderboard(t *testing.T) {
	r, f := setup(t)

	_, resp := test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/"+itoa(f.walk.ID)+"/male", nil)
	male := test.Data[leaderboard.SegmentBoardResp](t, resp)
	assert.Equal(t, "male", string(male.Gender))
	require.Len(t, male.Leaderboard, 2)
	assert.Equal(t, "Adam", male.Leaderboard[0].Member)
	assert.Equal(t, "70", male.Leaderboard[0].JudgeScore)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/"+itoa(f.walk.ID)+"/female", nil)
	female := test.Data[leaderboard.SegmentBoardResp](t, resp)
	require.Len(t, female.Leaderboard, 2)
	assert.Equal(t, "Bea", female.Leaderboard[0].Member)
	assert.Equal(t, "Pair B", female.Leaderboard[0].Name)
	assert.Equal(t, "95", female.Leaderboard[0].JudgeScore)
}

func TestPairGenderIsolation(t *testing.T) {
	r, f := setup(t)

	_, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.walk.ID, "gender": "male", "weight": 100},
			{"segment_id": f.walk.ID, "gender": "female", "weight": 100},
		},
	})
	test.NoError(t, resp)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/PairOverAll/female", nil)
	before := test.Data[leaderboard.OverallBoardResp](t, resp)

	// 只改男方的分数与权重
	test.SubmitScores(t, r, f.judge.ID, f.b.ID, "male", test.Score{SegmentID: f.walk.ID, CriterionID: f.maleW, Score: 10})
	_, resp = test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.walk.ID, "gender": "male", "weight": 20},
			{"segment_id": f.talent.ID, "gender": "male", "weight": 80},
			{"segment_id": f.walk.ID, "gender": "female", "weight": 100},
		},
	})
	test.NoError(t, resp)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/PairOverAll/female", nil)
	after := test.Data[leaderboard.OverallBoardResp](t, resp)
	assert.Equal(t, before, after)
	assert.Equal(t, "95.00%", after.Leaderboard[0].TotalScore)
	assert.Equal(t, "50.00%", after.Leaderboard[1].TotalScore)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/PairOverAll/male", nil)
	male := test.Data[leaderboard.OverallBoardResp](t, resp)
	require.Len(t, male.Segments, 2)
	assert.Equal(t, "Ben", male.Leaderboard[0].Member)
	assert.Equal(t, "20.00%", male.Leaderboard[0].TotalScore)
	assert.Equal(t, "N/A", male.Leaderboard[0].Segments[1].JudgeTotal)
}

func TestPairWeightFullReplace(t *testing.T) {
	r, f := setup(t)

	_, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.walk.ID, "gender": "male", "weight": 50},
			{"segment_id": f.talent.ID, "gender": "male", "weight": 50},
			{"segment_id": f.walk.ID, "gender": "female", "weight": 100},
		},
	})
	test.NoError(t, resp)

	_, resp = test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.talent.ID, "gender": "male", "weight": 100},
		},
	})
	cfg := test.Data[pairleaderboard.WeightResp](t, resp)
	require.Len(t, cfg.Male, 1)
	assert.Equal(t, f.talent.ID, cfg.Male[0].SegmentID)
	assert.Equal(t, 100.0, cfg.Male[0].Weight)
	assert.Empty(t, cfg.Female)

	w, resp := test.Do(t, r, http.MethodGet, "/PairLeaderboard/PairOverAll/female", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	test.ErrorEqual(t, response.ErrNotConfigured, resp)
}

func TestPairWeightReplaceIsAtomic(t *testing.T) {
	r, f := setup(t)

	_, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.walk.ID, "gender": "male", "weight": 50},
			{"segment_id": f.talent.ID, "gender": "male", "weight": 50},
			{"segment_id": f.walk.ID, "gender": "female", "weight": 100},
		},
	})
	test.NoError(t, resp)

	test.FailCreates(t, "pair_overall_weight")
	w, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{{"segment_id": f.talent.ID, "gender": "male", "weight": 100}},
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	test.ErrorEqual(t, response.ErrDatabase, resp)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/config", nil)
	cfg := test.Data[pairleaderboard.WeightResp](t, resp)
	require.Len(t, cfg.Male, 2)
	assert.Equal(t, 50.0, cfg.Male[0].Weight)
	assert.Equal(t, 50.0, cfg.Male[1].Weight)
	require.Len(t, cfg.Female, 1)
	assert.Equal(t, f.walk.ID, cfg.Female[0].SegmentID)
}

func TestPairWeightRejected(t *testing.T) {
	r, f := setup(t)

	_, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{
			{"segment_id": f.walk.ID, "gender": "male", "weight": 50},
			{"segment_id": f.walk.ID, "gender": "male", "weight": 60},
		},
	})
	test.ErrorEqual(t, response.ErrValidation, resp)

	_, resp = test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{{"segment_id": f.walk.ID, "gender": "other", "weight": 50}},
	})
	test.ErrorEqual(t, response.ErrValidation, resp)

	_, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/config", nil)
	cfg := test.Data[pairleaderboard.WeightResp](t, resp)
	assert.Empty(t, cfg.Male)
	assert.Empty(t, cfg.Female)
}

func TestPairBadGender(t *testing.T) {
	r, f := setup(t)

	w, resp := test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/"+itoa(f.walk.ID)+"/other", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	w, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/999/male", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	test.ErrorEqual(t, response.ErrNotFound, resp)

	w, resp = test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/Nowhere/male", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestPairSegmentByName(t *testing.T) {
	r, f := setup(t)

	w, resp := test.Do(t, r, http.MethodGet, "/PairLeaderboard/segment/Couple%20Walk/female", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := test.Data[leaderboard.SegmentBoardResp](t, resp)
	assert.Equal(t, f.walk.ID, board.Segment.ID)
	require.Len(t, board.Leaderboard, 2)
	assert.Equal(t, f.b.ID, board.Leaderboard[0].SubjectID)
	assert.Equal(t, "95", board.Leaderboard[0].JudgeScore)
}

func TestPairExport(t *testing.T) {
	r, f := setup(t)
	_, resp := test.Do(t, r, http.MethodPost, "/PairLeaderboard/store", gin.H{
		"segments": []gin.H{{"segment_id": f.walk.ID, "gender": "female", "weight": 100}},
	})
	test.NoError(t, resp)

	w, _ := test.Do(t, r, http.MethodGet, "/PairLeaderboard/PairOverAll/female/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pair-overall-female.xlsx")
}
