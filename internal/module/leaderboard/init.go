package leaderboard

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModuleLeaderboard struct{}

func (*ModuleLeaderboard) GetName() string {
	return "Leaderboard"
}

func (*ModuleLeaderboard) Init() {
	log = logger.New("Leaderboard")
}
