//go:build unit

package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "info", input: "info", want: LevelInfo},
		{name: "warn", input: "warn", want: LevelWarn},
		{name: "warning alias", input: "warning", want: LevelWarn},
		{name: "error", input: "error", want: LevelError},
		{name: "mixed case", input: "InFo", want: LevelInfo},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLevel(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestGoLogger_Enabled(t *testing.T) {
	t.Parallel()

	logger := NewGoLogger(LevelInfo)

	assert.True(t, logger.Enabled(LevelError))
	assert.True(t, logger.Enabled(LevelWarn))
	assert.True(t, logger.Enabled(LevelInfo))
	assert.False(t, logger.Enabled(LevelDebug))

	var nilLogger *GoLogger

	assert.False(t, nilLogger.Enabled(LevelError))
}

func TestGoLogger_WithDoesNotMutateParent(t *testing.T) {
	t.Parallel()

	parent := NewGoLogger(LevelDebug)
	child := parent.With(String("component", "leak"))

	require.NotNil(t, child)
	assert.Empty(t, parent.fields)
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.False(t, logger.Enabled(LevelError))
	assert.NoError(t, logger.Sync(context.Background()))
	assert.Same(t, logger, logger.With(String("k", "v")))

	// Must not panic.
	logger.Log(context.Background(), LevelError, "dropped")
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "s", Value: "v"}, String("s", "v"))
	assert.Equal(t, Field{Key: "i", Value: 7}, Int("i", 7))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "a", Value: 1.5}, Any("a", 1.5))
	assert.Equal(t, "error", Err(assert.AnError).Key)
}
