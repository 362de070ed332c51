package logger

import (
	"github.com/rs/zerolog"
)

// EngineAdapter bridges a zerolog.Logger to the calculation package's
// printf-style Logger interface.
type EngineAdapter struct {
	Log zerolog.Logger
}

func (a EngineAdapter) Debugf(format string, args ...any) { a.Log.Debug().Msgf(format, args...) }
func (a EngineAdapter) Infof(format string, args ...any)  { a.Log.Info().Msgf(format, args...) }
func (a EngineAdapter) Warnf(format string, args ...any)  { a.Log.Warn().Msgf(format, args...) }
func (a EngineAdapter) Errorf(format string, args ...any) { a.Log.Error().Msgf(format, args...) }
