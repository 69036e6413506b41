package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLogger(&buf, false)
	logger.Debug().Msg("hidden")
	logger.Info().Str("engine", "coregex").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "engine=coregex")

	buf.Reset()
	logger = InitLogger(&buf, true)
	logger.Debug().Msg("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
