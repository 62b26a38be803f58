package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcsalazar/punto-venta-api/pkg/logger"
)

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})

	assert.False(t, l.Debug().Enabled(), "con nivel desconocido el debug queda filtrado")
	assert.True(t, l.Info().Enabled())
}

func TestNew_NivelDebug(t *testing.T) {
	l := logger.New(logger.Config{Env: "development", Level: "debug"})

	assert.True(t, l.Debug().Enabled())
}
