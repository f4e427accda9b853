package log

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFormat(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetFormat("text")
		SetLevel(InfoLevel)
	})

	require.NoError(t, SetFormat("json"))
	WithFields(Fields{"code": "csv.append"}).Warn("disk full")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "disk full", entry["message"])
	assert.Equal(t, "csv.append", entry["code"])
	assert.Equal(t, "warning", entry["level"])
	assert.Contains(t, entry, "timestamp")

	buf.Reset()
	require.NoError(t, SetFormat("text"))
	Info("listening")
	assert.Contains(t, buf.String(), "listening")
	assert.Contains(t, buf.String(), "level=info")

	assert.Error(t, SetFormat("xml"))
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(InfoLevel)
	})

	SetLevel(InfoLevel)
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetLevel(DebugLevel)
	Debugf("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
}
