// Package logging builds the application logger and the zap-backed state
// observer. Logs go to a file because the terminal is owned by the TUI.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/postdeck/postdeck/internal/state"
)

// New returns a production logger writing to path, or a nop logger when path
// is empty.
func New(path string, verbose bool) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// StateObserver logs every store transition at debug level. It satisfies
// state.Observer and is the development-time inspection hook; wiring it in or
// leaving the store's no-op default changes nothing about behavior.
type StateObserver struct {
	log *zap.Logger
}

// NewStateObserver wraps log in a state observer.
func NewStateObserver(log *zap.Logger) *StateObserver {
	return &StateObserver{log: log}
}

func (o *StateObserver) StateChanged(prev, next state.State, a state.Action) {
	o.log.Debug("state transition",
		zap.String("action", fmt.Sprintf("%T", a)),
		zap.Int("posts", len(next.Posts)),
		zap.Bool("loading", next.Loading),
		zap.Bool("err", next.Err),
	)
}
