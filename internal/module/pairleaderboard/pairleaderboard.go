package pairleaderboard

import (
	"fmt"

	"pageant-scoring-system/internal/global/database"
	"pageant-scoring-system/internal/global/response"
	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/scoring"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func engine() *scoring.Engine {
	return scoring.NewEngine(Source{DB: database.DB})
}

// parseScope 组合赛必须指定 male 或 female
func parseScope(s string) (scoring.Scope, error) {
	gender, err := scoring.ParseGender(s)
	if err != nil {
		return scoring.Scope{}, err
	}
	if gender == scoring.GenderNone {
		return scoring.Scope{}, errors.New("gender is required")
	}
	return scoring.Scope{Gender: gender}, nil
}

func GetSegment(c *gin.Context) {
	scope, err := parseScope(c.Param("gender"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	src := Source{DB: database.DB}
	segmentID, ok := leaderboard.ResolveSegment(c, c.Param("segment_id"), src.SegmentIDByName)
	if !ok {
		return
	}
	leaderboard.ServeSegment(c, scoring.NewEngine(src), scope, segmentID)
}

func GetOverall(c *gin.Context) {
	scope, err := parseScope(c.Param("gender"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	leaderboard.ServeOverall(c, engine(), scope)
}

func ExportOverall(c *gin.Context) {
	scope, err := parseScope(c.Param("gender"))
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	leaderboard.ServeOverallExport(c, engine(), scope, fmt.Sprintf("pair-overall-%s.xlsx", scope.Gender))
}
