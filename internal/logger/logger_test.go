package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = New("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	_, err = New("loud")
	assert.Error(t, err)
}

func TestLogFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := WithLogger(context.Background(), zap.New(core).Sugar())

	Log(ctx).Infof("looked up %s", "01310100")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "looked up 01310100", logs.All()[0].Message)
}

func TestLogWithoutLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Log(context.Background()).Errorf("dropped")
	})
}
