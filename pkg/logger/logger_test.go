package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithAppField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithField("alert_id", "a-1").Debug("claimed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "claimed", entry["message"])
	assert.Equal(t, "emergency-dispatch", entry["app"])
	assert.Equal(t, "a-1", entry["alert_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
