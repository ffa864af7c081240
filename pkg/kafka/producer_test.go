package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
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

func TestPublishBatchEncodesValues(t *testing.T) {
	w := &recordingWriter{}
	p := newProducer(w, "gzip")

	err := p.PublishBatch(context.Background(), "price.ticks", []Message{
		{Key: []byte("BTCUSD"), Value: map[string]float64{"mid": 50000}},
		{Key: []byte("ETHUSD"), Value: "raw"},
		{Value: []byte(`{"x":1}`)},
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 3)

	require.Equal(t, "price.ticks", w.msgs[0].Topic)
	require.Equal(t, "BTCUSD", string(w.msgs[0].Key))
	require.JSONEq(t, `{"mid":50000}`, string(w.msgs[0].Value))
	require.Equal(t, "raw", string(w.msgs[1].Value))
	require.Equal(t, `{"x":1}`, string(w.msgs[2].Value))
	require.False(t, w.msgs[0].Time.IsZero())
}

func TestPublishBatchEmptyIsNoop(t *testing.T) {
	w := &recordingWriter{err: errors.New("must not be called")}
	p := newProducer(w, "gzip")
	require.NoError(t, p.PublishBatch(context.Background(), "t", nil))
}

func TestPublishMessageWrapsWriterError(t *testing.T) {
	boom := errors.New("broker down")
	p := newProducer(&recordingWriter{err: boom}, "zstd")

	err := p.PublishMessage(context.Background(), "logs", []string{"a"})
	require.ErrorIs(t, err, boom)
}

func TestPublishRejectsUnencodable(t *testing.T) {
	p := newProducer(&recordingWriter{}, "gzip")
	err := p.Publish(context.Background(), "t", nil, make(chan int))
	require.Error(t, err)
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	require.Error(t, err)
}

func TestClose(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, newProducer(w, "gzip").Close())
	require.True(t, w.closed)
}
