package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones para el logger.
type Config struct {
	Env   string // development -> consola legible; production -> JSON
	Level string // debug, info, warn, error
}

// Logger wrapper sobre zerolog para inyección y consistencia.
// El servicio emite solo en Info, Error y Fatal; el nivel configurado
// actúa como filtro.
type Logger struct {
	zl zerolog.Logger
}

// New crea un logger estructurado con el nivel configurado. En development
// usa salida legible; en production JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	return &Logger{zl: zl}
}

// parseLevel nivel mínimo a emitir; un valor desconocido cae en info.
func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info evento de nivel info (arranque, apagado, peticiones atendidas).
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Error evento de nivel error (fallas de petición y de infraestructura).
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Fatal evento de nivel fatal: loguea y termina el proceso.
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
