package events

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type testEvent struct {
	BaseEvent
}

func TestInMemoryEventDispatcher_DeliversToMatchingHandlers(t *testing.T) {
	d := NewInMemoryEventDispatcher(10, logger.NewLogger())

	var created, other int32
	require.NoError(t, d.Subscribe("report.created", NewSimpleEventHandler("report.created", func(DomainEvent) error {
		atomic.AddInt32(&created, 1)
		return nil
	})))
	require.NoError(t, d.Subscribe("report.resolved", NewSimpleEventHandler("report.resolved", func(DomainEvent) error {
		atomic.AddInt32(&other, 1)
		return errors.New("ignored")
	})))

	require.NoError(t, d.Start())
	require.NoError(t, d.PublishAll([]DomainEvent{
		testEvent{NewBaseEvent("1", "report.created")},
		testEvent{NewBaseEvent("2", "report.created")},
		testEvent{NewBaseEvent("3", "report.resolved")},
	}))
	require.NoError(t, d.Stop())

	assert.Equal(t, int32(2), atomic.LoadInt32(&created))
	assert.Equal(t, int32(1), atomic.LoadInt32(&other))
}

func TestInMemoryEventDispatcher_PublishRequiresRunning(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewLogger())
	assert.Error(t, d.Publish(testEvent{NewBaseEvent("1", "x")}))

	require.NoError(t, d.Start())
	assert.Error(t, d.Start())
	require.NoError(t, d.Stop())
	assert.Error(t, d.Stop())
}

func TestInMemoryEventDispatcher_RecoversPanics(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewLogger())
	require.NoError(t, d.Subscribe("boom", NewSimpleEventHandler("boom", func(DomainEvent) error {
		panic("handler exploded")
	})))
	require.NoError(t, d.Start())
	require.NoError(t, d.Publish(testEvent{NewBaseEvent("1", "boom")}))
	assert.NoError(t, d.Stop())
}

func TestSubscribe_Validation(t *testing.T) {
	d := NewInMemoryEventDispatcher(1, logger.NewLogger())
	assert.Error(t, d.Subscribe("", NewSimpleEventHandler("x", nil)))
	assert.Error(t, d.Subscribe("x", nil))
}
