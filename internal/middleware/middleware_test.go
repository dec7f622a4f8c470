package middleware

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	tele "gopkg.in/telebot.v3"
)

type fakeContext struct {
	tele.Context

	sender   *tele.User
	callback *tele.Callback
	text     string
}

func (c *fakeContext) Sender() *tele.User       { return c.sender }
func (c *fakeContext) Callback() *tele.Callback { return c.callback }
func (c *fakeContext) Text() string             { return c.text }

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestRecover(t *testing.T) {
	logger, logs := newObservedLogger()
	h := Recover(logger)(func(c tele.Context) error {
		panic("boom")
	})

	err := h(&fakeContext{sender: &tele.User{ID: 42}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestRecover_PassesThrough(t *testing.T) {
	logger, logs := newObservedLogger()
	want := errors.New("handler error")
	h := Recover(logger)(func(c tele.Context) error { return want })

	assert.ErrorIs(t, h(&fakeContext{}), want)
	assert.Equal(t, 0, logs.Len())
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name          string
		ctx           *fakeContext
		handlerErr    error
		expectedMsg   string
		expectedLevel zapcore.Level
		expectedField string
	}{
		{
			name:          "command",
			ctx:           &fakeContext{sender: &tele.User{ID: 42}, text: "/start"},
			expectedMsg:   "Update handled",
			expectedLevel: zapcore.DebugLevel,
			expectedField: "text",
		},
		{
			name:          "callback",
			ctx:           &fakeContext{sender: &tele.User{ID: 42}, callback: &tele.Callback{Unique: "accept"}},
			expectedMsg:   "Update handled",
			expectedLevel: zapcore.DebugLevel,
			expectedField: "callback",
		},
		{
			name:          "handler error",
			ctx:           &fakeContext{sender: &tele.User{ID: 42}, text: "/users"},
			handlerErr:    errors.New("send failed"),
			expectedMsg:   "Update failed",
			expectedLevel: zapcore.ErrorLevel,
			expectedField: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newObservedLogger()
			h := Logging(logger)(func(c tele.Context) error { return tt.handlerErr })

			err := h(tt.ctx)

			assert.Equal(t, tt.handlerErr, err)
			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedMsg, entries[0].Message)
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				assert.Equal(t, int64(42), entries[0].ContextMap()["user_id"])
				assert.Contains(t, entries[0].ContextMap(), tt.expectedField)
			}
		})
	}
}
