package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSet_RoutesHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Set(zap.New(core))
	t.Cleanup(func() { Set(nil) })

	Info("catalogue chargé", zap.String("locale", "fr"))
	Warn("attention")
	Error("erreur")
	Debug("détail")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "catalogue chargé", entries[0].Message)
	assert.Equal(t, "fr", entries[0].ContextMap()["locale"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[3].Level)
}

func TestGet_FallsBackWithoutInit(t *testing.T) {
	Set(nil)
	t.Cleanup(func() { Set(nil) })
	assert.NotNil(t, Get())
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	require.NoError(t, Init("development"))
	assert.NotNil(t, Get())
	require.NoError(t, Init("production"))
	assert.NotNil(t, Get())
}
