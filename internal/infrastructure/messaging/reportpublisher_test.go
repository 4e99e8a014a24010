package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relatorio-inc/relatorio/internal/domain/report"
	"github.com/relatorio-inc/relatorio/internal/domain/shared/events"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange, key, msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestPublisher(channels ...*fakeChannel) (*ReportEventPublisher, *int) {
	p := NewReportEventPublisher("amqp://test", "relatorio.events", logger.NewLogger())
	dials := 0
	p.dial = func(string) (amqpChannel, func() error, error) {
		if dials >= len(channels) {
			return nil, nil, errors.New("broker unavailable")
		}
		ch := channels[dials]
		dials++
		return ch, func() error { return nil }, nil
	}
	return p, &dials
}

func resolvedEvent() report.ReportResolvedEvent {
	return report.ReportResolvedEvent{
		BaseEvent: events.NewBaseEvent("12", report.EventReportResolved),
		ReportID:  12,
		TenantID:  1,
		AuthorID:  3,
		ActorID:   4,
		Title:     "Bomba parada",
	}
}

func TestReportEventPublisher_Handle(t *testing.T) {
	ch := &fakeChannel{}
	p, dials := newTestPublisher(ch)

	require.NoError(t, p.Handle(resolvedEvent()))
	require.NoError(t, p.Handle(resolvedEvent()))

	assert.Equal(t, 1, *dials)
	assert.Equal(t, []string{"relatorio.events:topic"}, ch.declared)
	require.Len(t, ch.published, 2)

	first := ch.published[0]
	assert.Equal(t, "relatorio.events", first.exchange)
	assert.Equal(t, report.EventReportResolved, first.key)
	assert.Equal(t, "application/json", first.msg.ContentType)
	assert.Equal(t, amqp.Persistent, first.msg.DeliveryMode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(first.msg.Body, &body))
	assert.Equal(t, float64(12), body["report_id"])
	assert.Equal(t, report.EventReportResolved, body["event_type"])
}

func TestReportEventPublisher_HandleDeleted(t *testing.T) {
	ch := &fakeChannel{}
	p, _ := newTestPublisher(ch)

	require.NoError(t, p.Handle(report.ReportChangedEvent{
		BaseEvent: events.NewBaseEvent("7", report.EventReportDeleted),
		ReportID:  7,
		TenantID:  1,
		ActorID:   3,
	}))

	require.Len(t, ch.published, 1)
	assert.Equal(t, report.EventReportDeleted, ch.published[0].key)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(ch.published[0].msg.Body, &body))
	assert.Equal(t, float64(7), body["report_id"])
	assert.Equal(t, float64(3), body["actor_id"])
}

func TestReportEventPublisher_ReconnectsAfterFailure(t *testing.T) {
	broken := &fakeChannel{publishErr: errors.New("channel closed")}
	healthy := &fakeChannel{}
	p, dials := newTestPublisher(broken, healthy)

	assert.Error(t, p.Handle(resolvedEvent()))
	assert.True(t, broken.closed)

	require.NoError(t, p.Handle(resolvedEvent()))
	assert.Equal(t, 2, *dials)
	assert.Len(t, healthy.published, 1)
}

func TestReportEventPublisher_DialFailure(t *testing.T) {
	p, _ := newTestPublisher()
	assert.Error(t, p.Handle(resolvedEvent()))
}

func TestReportEventPublisher_CanHandle(t *testing.T) {
	p := NewReportEventPublisher("", "x", logger.NewLogger())
	assert.True(t, p.CanHandle(report.EventReportCreated))
	assert.True(t, p.CanHandle(report.EventReportProgressUpdated))
	assert.True(t, p.CanHandle(report.EventReportUpdated))
	assert.True(t, p.CanHandle(report.EventReportDeleted))
	assert.False(t, p.CanHandle("user.created"))
}
