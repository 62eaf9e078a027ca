package observe

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoor-advisor/pkg/logger"
)

func newTestHook(captured *[]*sentry.Event) *SentryHook {
	return &SentryHook{
		appZone: "test",
		appName: "test-app",
		capture: func(event *sentry.Event) *sentry.EventID {
			*captured = append(*captured, event)
			return nil
		},
	}
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	_, err := NewSentryHook("dev", "test-app", false, "")
	assert.Error(t, err)
}

func TestSentryHook_ForwardsErrors(t *testing.T) {
	var captured []*sentry.Event
	hook := newTestHook(&captured)

	var buf bytes.Buffer
	l := logger.New(logger.Options{AppName: "test-app", Level: "debug", Writers: []io.Writer{&buf, hook}})

	l.Info("fine")
	l.Warning("careful")
	l.Error(errors.New("nasa power unavailable"), map[string]any{"status": 503})

	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "nasa power unavailable", event.Message)
	assert.Equal(t, "test", event.Environment)
	assert.Equal(t, "test-app", event.Extra["AppName"])
	assert.Equal(t, "nasa power unavailable", event.Extra["Error"])
	require.Len(t, event.Exception, 1)
	assert.False(t, event.Timestamp.IsZero())

	// The primary writer still receives every line
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestSentryHook_IgnoresGarbage(t *testing.T) {
	var captured []*sentry.Event
	hook := newTestHook(&captured)

	n, err := hook.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	n, err = hook.Write([]byte(`{"level":"nope","msg":"x"}`))
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Empty(t, captured)
}
