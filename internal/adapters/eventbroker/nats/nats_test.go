package nats_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	nats2 "med-voice/internal/adapters/eventbroker/nats"
	"med-voice/internal/config"
	"med-voice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type mockHandler struct {
	messages [][]byte
	received chan struct{}
	err      error
	mu       sync.Mutex
}

func (m *mockHandler) HandleMessage(ctx context.Context, data []byte) error {
	m.mu.Lock()
	m.messages = append(m.messages, data)
	m.mu.Unlock()

	if m.received != nil {
		m.received <- struct{}{}
	}
	return m.err
}

func setupNATSContainer(t *testing.T) (string, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "nats:2.10-alpine",
		ExposedPorts: []string{"4222/tcp"},
		Cmd:          []string{"-js"},
		WaitingFor:   wait.ForLog("Server is ready"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	cleanup := func() {
		_ = container.Terminate(ctx)
	}

	return "nats://" + host + ":" + port.Port(), cleanup
}

func TestPublisherConsumer_RoundTrip(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   "RECORDINGS",
		Subject:      "recordings.uploaded",
		ConsumerName: "transcriber",
		DeliverGroup: "transcribers",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher, err := nats2.NewNATSPublisher(ctx, cfg, logger)
	require.NoError(t, err)
	defer publisher.Close()

	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	handler := &mockHandler{received: make(chan struct{}, 1)}
	require.NoError(t, consumer.Subscribe(ctx, handler))

	event := domain.RecordingUploadedEvent{
		RecordingID: uuid.New(),
		ObjectKey:   "audio/file.webm",
		MimeType:    "audio/webm",
		SizeBytes:   2048,
	}

	// Act
	require.NoError(t, publisher.PublishRecordingUploaded(ctx, event))

	select {
	case <-handler.received:
	case <-time.After(3 * time.Second):
		t.Fatal("event not received")
	}

	// Assert
	require.Len(t, handler.messages, 1)
	var got domain.RecordingUploadedEvent
	require.NoError(t, json.Unmarshal(handler.messages[0], &got))
	assert.Equal(t, event, got)
}

func TestConsumer_Subscribe_HandlerErrorRedelivers(t *testing.T) {
	// Arrange
	natsURL, cleanup := setupNATSContainer(t)
	defer cleanup()

	cfg := config.NATSConfig{
		URL:          natsURL,
		StreamName:   "RECORDINGS",
		Subject:      "recordings.uploaded",
		ConsumerName: "transcriber",
		DeliverGroup: "transcribers",
	}

	nc, err := nats.Connect(natsURL)
	require.NoError(t, err)
	defer nc.Close()

	js, err := nc.JetStream()
	require.NoError(t, err)
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{cfg.Subject},
	})
	require.NoError(t, err)

	handler := &mockHandler{
		received: make(chan struct{}, 2),
		err:      assert.AnError,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	consumer, err := nats2.NewNATSConsumer(cfg, logger)
	require.NoError(t, err)
	defer consumer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Act
	require.NoError(t, consumer.Subscribe(ctx, handler))

	_, err = js.Publish(cfg.Subject, []byte("fail"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		select {
		case <-handler.received:
		case <-time.After(5 * time.Second):
			t.Fatal("expected redelivery")
		}
	}

	// Assert: the nak led to at least one redelivery
	assert.GreaterOrEqual(t, len(handler.messages), 2)
}
