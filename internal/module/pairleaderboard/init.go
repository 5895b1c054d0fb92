package pairleaderboard

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModulePairLeaderboard struct{}

func (*ModulePairLeaderboard) GetName() string {
	return "PairLeaderboard"
}

func (*ModulePairLeaderboard) Init() {
	log = logger.New("PairLeaderboard")
}
