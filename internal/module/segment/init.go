package segment

import (
	"log/slog"

	"pageant-scoring-system/internal/global/logger"
)

var log *slog.Logger

type ModuleSegment struct{}

func (*ModuleSegment) GetName() string {
	return "Segment"
}

func (*ModuleSegment) Init() {
	log = logger.New("Segment")
}
