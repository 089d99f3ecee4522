package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("warn", &buf)

	log.Info("hidden")
	log.Debugf("hidden %d", 1)
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Debug("before")
	log.SetLevel("debug")
	log.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "[DEBUG] after")
}

func TestArgumentsJoinedWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Error("failed to load:", errors.New("boom"))
	assert.Contains(t, buf.String(), "[ERROR] failed to load: boom\n")
}
