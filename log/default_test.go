package log_test

import (
	"bytes"
	"testing"

	"github.com/Invicton-Labs/go-lists/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// restoreDefault puts the previous default logger back when the test ends.
func restoreDefault(t *testing.T) {
	previous := log.Default().Config()
	t.Cleanup(func() {
		require.Nil(t, log.InitDefault(previous))
	})
}

func TestComponentLoggerFollowsDefault(t *testing.T) {
	restoreDefault(t)

	var first, second bytes.Buffer
	require.Nil(t, log.InitDefault(log.NewInput{Level: zapcore.DebugLevel, Output: zapcore.AddSync(&first)}))

	component := log.ComponentLogger("widgets")
	defer component.Close()

	component.Logger().Debugw("first entry")
	require.NoError(t, component.Logger().Sync())
	entries := decodeLines(t, &first)
	require.Len(t, entries, 1)
	assert.Equal(t, "widgets", entries[0]["component"])

	require.Nil(t, log.InitDefault(log.NewInput{Level: zapcore.InfoLevel, Output: zapcore.AddSync(&second)}))
	component.Logger().Debugw("filtered")
	component.Logger().Infow("second entry")
	require.NoError(t, component.Logger().Sync())

	entries = decodeLines(t, &second)
	require.Len(t, entries, 1)
	assert.Equal(t, "second entry", entries[0]["msg"])
	assert.Equal(t, "widgets", entries[0]["component"])
	assert.Len(t, decodeLines(t, &first), 1)
}

func TestPackageLevelFunctions(t *testing.T) {
	restoreDefault(t)

	var buf bytes.Buffer
	require.Nil(t, log.InitDefault(log.NewInput{Level: zapcore.InfoLevel, Output: zapcore.AddSync(&buf)}))

	log.Infow("via package", "k", "v")
	log.Debugf("hidden")
	require.NoError(t, log.Default().Sync())

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "via package", entries[0]["msg"])
	assert.Equal(t, "v", entries[0]["k"])
}

func TestSweetenDefaultLogger(t *testing.T) {
	restoreDefault(t)

	require.Nil(t, log.SweetenDefaultLogger(map[string]any{"run_id": "abc"}))
	assert.Equal(t, "abc", log.Default().Config().InitialFields["run_id"])

	require.Nil(t, log.UnsweetenDefaultLogger([]string{"run_id", "missing"}))
	_, ok := log.Default().Config().InitialFields["run_id"]
	assert.False(t, ok)

	require.Nil(t, log.UnsweetenDefaultLogger([]string{"missing"}))
}
