package injector

import (
	"github.com/zeusync/mathobjects/internal/core/observability/log"
	"github.com/zeusync/mathobjects/internal/scenario"
)

// App is everything vecctl needs to run scenarios.
type App struct {
	Logger *log.Logger
	Runner *scenario.Runner
}
