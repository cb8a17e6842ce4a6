package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/postdeck/postdeck/internal/post"
	"github.com/postdeck/postdeck/internal/state"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	// must be safe to use
	logger.Info("ignored")
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postdeck.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Info("hello")
	require.NoError(t, logger.Sync())

	assert.FileExists(t, path)
}

func TestStateObserver_LogsTransition(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := NewStateObserver(zap.New(core))

	prev := state.Initial()
	next := state.State{Posts: []post.Post{{ID: 1}}, Loading: true}
	obs.StateChanged(prev, next, state.SetLoading{Flag: true})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "state transition", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "state.SetLoading", fields["action"])
	assert.Equal(t, int64(1), fields["posts"])
	assert.Equal(t, true, fields["loading"])
}
