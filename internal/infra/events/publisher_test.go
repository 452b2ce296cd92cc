//go:build unit

package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisher(w, time.Second)
	listingID := uuid.New()
	requestID := uuid.New()
	at := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	err := p.Publish(context.Background(), shared.Event{
		Type:       shared.EventRequestAccepted,
		ListingID:  listingID,
		RequestID:  &requestID,
		ActorEmail: "donor@example.com",
		OccurredAt: at,
	})

	require.NoError(t, err)
	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, listingID.String(), string(msg.Key))
	assert.Equal(t, at, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, string(shared.EventRequestAccepted), string(msg.Headers[0].Value))

	var decoded shared.Event
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, listingID, decoded.ListingID)
	require.NotNil(t, decoded.RequestID)
	assert.Equal(t, requestID, *decoded.RequestID)
	assert.Equal(t, "donor@example.com", decoded.ActorEmail)
}

func TestKafkaPublisher_PublishCancelledContext(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisher(w, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, shared.Event{Type: shared.EventListingDeleted, ListingID: uuid.New()})

	require.NoError(t, err)
	assert.Len(t, w.msgs, 1)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	w := &recordingWriter{err: errors.New("broker unavailable")}
	p := NewKafkaPublisher(w, time.Second)

	err := p.Publish(context.Background(), shared.Event{Type: shared.EventListingCreated, ListingID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")
}

func TestKafkaPublisher_Close(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, NewKafkaPublisher(w, time.Second).Close())
	assert.True(t, w.closed)
}
