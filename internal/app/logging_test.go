package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBuildLogConfigByEnvironment(t *testing.T) {
	tests := []struct {
		name             string
		env              string
		wantLevel        zapcore.Level
		wantDisableStack bool
		wantCaller       bool
		wantCallerKey    string
	}{
		{"development", "development", zap.DebugLevel, true, false, zapcore.OmitKey},
		{"debug", " DEBUG ", zap.DebugLevel, false, true, "caller"},
		{"production", "production", zap.InfoLevel, true, false, zapcore.OmitKey},
		{"fallback", "unknown", zap.InfoLevel, true, false, zapcore.OmitKey},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, withCaller := buildLogConfig(tc.env)

			require.Equal(t, tc.wantLevel, cfg.Level.Level())
			require.Equal(t, tc.wantDisableStack, cfg.DisableStacktrace)
			require.Equal(t, tc.wantCaller, withCaller)
			require.Equal(t, tc.wantCallerKey, cfg.EncoderConfig.CallerKey)
			require.Equal(t, "timestamp", cfg.EncoderConfig.TimeKey)
			require.Equal(t, []string{"stderr"}, cfg.OutputPaths)
		})
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maskfield.log")

	l, err := NewLogger(LogOptions{Env: EnvProduction, Level: "debug", Path: path})
	require.NoError(t, err)
	l.Debug("field built", zap.String("field", "phone"))
	SafeSync(l)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"field built"`)
	require.Contains(t, string(data), `"logger":"maskfield"`)
}

func TestNewLoggerRejectsLevel(t *testing.T) {
	_, err := NewLogger(LogOptions{Level: "loud"})
	require.Error(t, err)
}

func TestIsIgnorableSyncError(t *testing.T) {
	require.False(t, isIgnorableSyncError(nil))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: invalid argument")))
	require.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: inappropriate ioctl for device")))
	require.False(t, isIgnorableSyncError(errors.New("disk write failed")))
}
