package judge

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModuleJudge struct{}

func (*ModuleJudge) GetName() string {
	return "Judge"
}

func (*ModuleJudge) Init() {
	log = logger.New("Judge")
}
