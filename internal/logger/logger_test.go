package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		debugging bool
	}{
		{"production", false},
		{"development", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := New(tt.env)
			require.NoError(t, err)
			assert.Equal(t, tt.debugging, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
