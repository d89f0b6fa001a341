package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	dev := New("development", &buf)
	dev.Debug().Msg("visible")
	assert.Contains(t, buf.String(), `"message":"visible"`)

	buf.Reset()
	prod := New("production", &buf)
	prod.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	prod.Info().Str("run_id", "r1").Msg("scheduled")
	assert.Contains(t, buf.String(), `"run_id":"r1"`)
}
