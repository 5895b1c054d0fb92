package score

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModuleScore struct{}

func (*ModuleScore) GetName() string {
	return "Score"
}

func (*ModuleScore) Init() {
	log = logger.New("Score")
}
