package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida del log del servicio.
type Config struct {
	Env   string // development escribe consola legible; cualquier otro valor, JSON
	Level string // trace, debug, info, warn, error; si no se reconoce cae en info
}

// Logger logger estructurado con el nombre del servicio estampado en cada evento.
type Logger struct {
	zl zerolog.Logger
}

// New arma el logger según el entorno y lo instala además como logger global
// de zerolog, para las librerías que escriban por esa vía.
func New(cfg Config) *Logger {
	var salida io.Writer = os.Stdout
	if cfg.Env == "development" {
		salida = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	nivel, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || nivel == zerolog.NoLevel {
		nivel = zerolog.InfoLevel
	}

	zl := zerolog.New(salida).
		Level(nivel).
		With().
		Timestamp().
		Str("servicio", "punto-venta-api").
		Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos (por ejemplo, el módulo que escribe).
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
