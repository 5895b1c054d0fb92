package module

import (
	"pageant-scoring-system/internal/module/candidate"
	"pageant-scoring-system/internal/module/judge"
	"pageant-scoring-system/internal/module/leaderboard"
	"pageant-scoring-system/internal/module/pairleaderboard"
	"pageant-scoring-system/internal/module/ping"
	"pageant-scoring-system/internal/module/score"
	"pageant-scoring-system/internal/module/segment"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&candidate.ModuleCandidate{},
		&judge.ModuleJudge{},
		&segment.ModuleSegment{},
		&score.ModuleScore{},
		&leaderboard.ModuleLeaderboard{},
		&pairleaderboard.ModulePairLeaderboard{},
	})
}
