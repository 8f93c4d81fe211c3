package logger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx/fxevent"
)

type fxLogger struct {
	l zerolog.Logger
}

// Fx reports dependency graph events through the global logger. Successful
// provide and invoke steps are logged at debug level.
func Fx() fxevent.Logger {
	return &fxLogger{
		l: log.Logger.With().Str("evt.name", "app.fx").Logger(),
	}
}

func (f *fxLogger) result(err error, level zerolog.Level) *zerolog.Event {
	if err != nil {
		return f.l.Error().Err(err)
	}
	return f.l.WithLevel(level)
}

func (f *fxLogger) LogEvent(event fxevent.Event) {
	switch e := event.(type) {
	case *fxevent.Supplied:
		f.result(e.Err, zerolog.DebugLevel).
			Str("type", e.TypeName).
			Str("module", e.ModuleName).
			Msg("supplied")
	case *fxevent.Provided:
		f.result(e.Err, zerolog.DebugLevel).
			Str("constructor", e.ConstructorName).
			Str("outputs", strings.Join(e.OutputTypeNames, ", ")).
			Str("module", e.ModuleName).
			Msg("provided")
	case *fxevent.Invoked:
		ev := f.result(e.Err, zerolog.DebugLevel).
			Str("function", e.FunctionName).
			Str("module", e.ModuleName)
		if e.Err != nil {
			ev = ev.Str("trace", e.Trace)
		}
		ev.Msg("invoked")
	case *fxevent.OnStartExecuted:
		f.result(e.Err, zerolog.DebugLevel).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("OnStart hook executed")
	case *fxevent.OnStopExecuted:
		f.result(e.Err, zerolog.DebugLevel).
			Str("callee", e.FunctionName).
			Str("caller", e.CallerName).
			Dur("runtime", e.Runtime).
			Msg("OnStop hook executed")
	case *fxevent.Stopping:
		f.l.Info().Str("signal", strings.ToUpper(e.Signal.String())).Msg("received signal")
	case *fxevent.Stopped:
		f.result(e.Err, zerolog.InfoLevel).Msg("stopped")
	case *fxevent.RollingBack:
		f.l.Error().Err(e.StartErr).Msg("start failed, rolling back")
	case *fxevent.RolledBack:
		f.result(e.Err, zerolog.InfoLevel).Msg("rolled back")
	case *fxevent.Started:
		f.result(e.Err, zerolog.InfoLevel).Msg("started")
	case *fxevent.LoggerInitialized:
		f.result(e.Err, zerolog.DebugLevel).
			Str("constructor", e.ConstructorName).
			Msg("initialized custom fxevent.Logger")
	}
}
