package candidate

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModuleCandidate struct{}

func (*ModuleCandidate) GetName() string {
	return "Candidate"
}

func (*ModuleCandidate) Init() {
	log = logger.New("Candidate")
}
