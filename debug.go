package wander

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetDebugMode enables or disables debug logging. When enabled and no logger
// was configured, a development logger writing to stderr is installed so
// dropped transitions, refused entries and puzzle resets become visible.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	if !enabled {
		if s.cfg.Logger != nil {
			s.svc.SetLogger(s.cfg.Logger)
		} else {
			s.svc.SetLogger(zap.NewNop())
		}
		return
	}
	if s.cfg.Logger != nil {
		return // a configured logger keeps its own level
	}
	l, err := newDebugLogger()
	if err != nil {
		return
	}
	s.svc.SetLogger(l)
}

// DebugMode reports whether debug logging is enabled.
func (s *Stage) DebugMode() bool {
	return s.debug
}

func newDebugLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Named("wander"), nil
}
