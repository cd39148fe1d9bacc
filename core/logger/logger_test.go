package logger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
	}{
		{"DebugConsole", Config{Level: "debug", Format: "console"}, zapcore.DebugLevel},
		{"InfoJSON", Config{Level: "info", Format: "json"}, zapcore.InfoLevel},
		{"Warn", Config{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{"UnknownFallsBackToInfo", Config{Level: "verbose", Format: "console"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestWithRunID(t *testing.T) {
	l, err := New(&Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	tagged, id := WithRunID(l)
	assert.NotNil(t, tagged)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	_, other := WithRunID(l)
	assert.NotEqual(t, id, other)
}
