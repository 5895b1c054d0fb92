package leaderboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/metrics"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/global/sentry/tracing"
	"pageant-scoring-system/internal/scoring"
	"pageant-scoring-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	viewSegment = "segment"
	viewOverall = "overall"
)

type SegmentBoardResp struct {
	Gender      scoring.Gender         `json:"gender,omitempty"`
	Segment     scoring.Segment        `json:"segment"`
	Leaderboard []scoring.SegmentEntry `json:"leaderboard"`
}

type OverallBoardResp struct {
	Gender      scoring.Gender          `json:"gender,omitempty"`
	Segments    []scoring.SegmentWeight `json:"segments"`
	Leaderboard []scoring.OverallEntry  `json:"leaderboard"`
}

// 导出的 xlsx 行
type overallRow struct {
	Rank       int    `excel:"排名"`
	Name       string `excel:"姓名"`
	Member     string `excel:"成员"`
	TotalScore string `excel:"总分"`
}

type breakdownRow struct {
	Rank          int     `excel:"排名"`
	Name          string  `excel:"姓名"`
	Member        string  `excel:"成员"`
	Segment       string  `excel:"环节"`
	Weight        float64 `excel:"权重"`
	RawScore      float64 `excel:"原始分"`
	JudgeTotal    string  `excel:"环节得分"`
	WeightedScore float64 `excel:"加权分"`
}

func engine() *scoring.Engine {
	return scoring.NewEngine(Source{DB: database.DB})
}

func GetSegment(c *gin.Context) {
	src := Source{DB: database.DB}
	segmentID, ok := ResolveSegment(c, c.Param("segment_id"), src.SegmentIDByName)
	if !ok {
		return
	}
	ServeSegment(c, scoring.NewEngine(src), scoring.Scope{}, segmentID)
}

func GetOverall(c *gin.Context) {
	ServeOverall(c, engine(), scoring.Scope{})
}

func ExportOverall(c *gin.Context) {
	ServeOverallExport(c, engine(), scoring.Scope{}, "overall-leaderboard.xlsx")
}

// ParseID 解析路径中的正整数 ID
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if id == 0 {
		return 0, errors.New("id must be positive")
	}
	return uint(id), nil
}

// ResolveSegment 路径参数为数字时按 ID 解析，否则按环节名查找；失败时已写出响应
func ResolveSegment(c *gin.Context, param string, byName func(context.Context, string) (uint, error)) (uint, bool) {
	if isDigits(param) {
		id, err := ParseID(param)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return 0, false
		}
		return id, true
	}
	if param == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("segment_id"))
		return 0, false
	}
	id, err := byName(c.Request.Context(), param)
	if err != nil {
		Fail(c, err, "segment_name", param)
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ServeSegment 分环节榜单，单人赛与组合赛共用
func ServeSegment(c *gin.Context, e *scoring.Engine, scope scoring.Scope, segmentID uint) {
	ctx, finish := tracing.StartSpan(tracing.ContextWithSpan(c), "leaderboard.segment", scope.String())
	defer finish()

	start := time.Now()
	board, err := e.SegmentLeaderboard(ctx, scope, segmentID)
	observe(viewSegment, scope, err, start)
	if err != nil {
		Fail(c, err, "segment_id", segmentID, "scope", scope.String())
		return
	}

	response.Success(c, SegmentBoardResp{
		Gender:      scope.Gender,
		Segment:     board.Segment,
		Leaderboard: board.Entries(),
	})
}

// ServeOverall 总榜，单人赛与组合赛共用
func ServeOverall(c *gin.Context, e *scoring.Engine, scope scoring.Scope) {
	board, ok := buildOverall(c, e, scope)
	if !ok {
		return
	}
	response.Success(c, OverallBoardResp{
		Gender:      scope.Gender,
		Segments:    board.Segments,
		Leaderboard: board.Entries(),
	})
}

// ServeOverallExport 总榜导出为 xlsx：总分一页，环节明细一页
func ServeOverallExport(c *gin.Context, e *scoring.Engine, scope scoring.Scope, filename string) {
	board, ok := buildOverall(c, e, scope)
	if !ok {
		return
	}

	var overall []overallRow
	var breakdown []breakdownRow
	for _, entry := range board.Entries() {
		overall = append(overall, overallRow{
			Rank:       entry.Rank,
			Name:       entry.Name,
			Member:     entry.Member,
			TotalScore: entry.TotalScore,
		})
		for _, seg := range entry.Segments {
			breakdown = append(breakdown, breakdownRow{
				Rank:          entry.Rank,
				Name:          entry.Name,
				Member:        entry.Member,
				Segment:       seg.SegmentName,
				Weight:        seg.Weight,
				RawScore:      seg.RawScore,
				JudgeTotal:    seg.JudgeTotal,
				WeightedScore: seg.WeightedScore,
			})
		}
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "Sheet1", overall); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := tools.ExportToExcel(f, "Breakdown", breakdown); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := f.SetSheetName("Sheet1", "Overall"); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := tools.SendExcel(c, f, filename); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	log.Info("总榜已导出", "scope", scope.String(), "rows", len(overall))
}

func buildOverall(c *gin.Context, e *scoring.Engine, scope scoring.Scope) (*scoring.OverallBoard, bool) {
	ctx, finish := tracing.StartSpan(tracing.ContextWithSpan(c), "leaderboard.overall", scope.String())
	defer finish()

	start := time.Now()
	board, err := e.OverallLeaderboard(ctx, scope)
	observe(viewOverall, scope, err, start)
	if err != nil {
		Fail(c, err, "scope", scope.String())
		return nil, false
	}
	return board, true
}

// Fail 将引擎错误映射为响应错误：未配置 400，环节不存在 404，其余一律 500 且不返回部分结果
func Fail(c *gin.Context, err error, attrs ...any) {
	switch {
	case errors.Is(err, scoring.ErrNotConfigured):
		response.Fail(c, response.ErrNotConfigured)
	case errors.Is(err, scoring.ErrSegmentNotFound):
		response.Fail(c, response.ErrNotFound.WithTips("segment"))
	default:
		log.Error("榜单计算失败", append([]any{"error", fmt.Sprintf("%+v", err)}, attrs...)...)
		response.Fail(c, response.ErrAggregation.WithOrigin(err))
	}
}

func observe(view string, scope scoring.Scope, err error, start time.Time) {
	result := metrics.ResultOK
	switch {
	case err == nil:
	case errors.Is(err, scoring.ErrNotConfigured):
		result = metrics.ResultNotConfigured
	case errors.Is(err, scoring.ErrSegmentNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.Default().ObserveLeaderboard(view, scope.String(), result, time.Since(start))
}
