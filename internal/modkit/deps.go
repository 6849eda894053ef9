package modkit

import (
	"wordlebot/internal/platform/config"
	"wordlebot/internal/platform/logger"
)

// Deps holds what every module may need at construction
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log, or the named root logger when Log is unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
