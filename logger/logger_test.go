package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologAdapterWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("clahe", "enhancement complete", map[string]interface{}{
		"tiles_x": 8,
	})

	out := buf.String()
	assert.Contains(t, out, `"component":"clahe"`)
	assert.Contains(t, out, `"tiles_x":8`)
	assert.Contains(t, out, "enhancement complete")
}

func TestZerologAdapterLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("clahe", "noisy", nil)
	log.Info("clahe", "still noisy", nil)
	assert.Empty(t, buf.String())

	log.Warning("clahe", "kept", nil)
	assert.Contains(t, buf.String(), "kept")
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("chain", errors.New("step exploded"), map[string]interface{}{
		"step": "clahe_filter",
	})

	out := buf.String()
	assert.Contains(t, out, "step exploded")
	assert.Contains(t, out, `"step":"clahe_filter"`)
}

func TestFileLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileLogger(DebugLevel, &buf)

	log.Debug("gray", "validated", map[string]interface{}{"width": 16})

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"component":"gray"`)
	assert.Contains(t, out, `"width":16`)
}

func TestStructuredLoggerLevelGate(t *testing.T) {
	var buf bytes.Buffer
	log := NewFileLogger(WarnLevel, &buf)

	log.Debug("gray", "dropped", nil)
	log.Info("gray", "dropped too", nil)
	assert.Empty(t, buf.String())
}

func TestNopLoggerIsSilent(t *testing.T) {
	log := Nop()
	require.NotPanics(t, func() {
		log.Debug("x", "y", nil)
		log.Info("x", "y", nil)
		log.Warning("x", "y", nil)
		log.Error("x", errors.New("z"), nil)
	})
}
