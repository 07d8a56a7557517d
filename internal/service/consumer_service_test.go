package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ai-compliance-be/internal/apperr"
	"ai-compliance-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type logEntry struct {
	level   string
	module  string
	message string
}

// recordingLogger pushes every call onto a channel so tests can wait for
// log lines without sleeping.
type recordingLogger struct {
	entries chan logEntry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: make(chan logEntry, 64)}
}

func (l *recordingLogger) Debug(module, message string, _ map[string]interface{}) {
	l.entries <- logEntry{"DEBUG", module, message}
}

func (l *recordingLogger) Info(module, message string, _ map[string]interface{}) {
	l.entries <- logEntry{"INFO", module, message}
}

func (l *recordingLogger) Warn(module, message string, _ map[string]interface{}) {
	l.entries <- logEntry{"WARN", module, message}
}

func (l *recordingLogger) Error(module, message string, _ map[string]interface{}) {
	l.entries <- logEntry{"ERROR", module, message}
}

func (l *recordingLogger) Sync() error { return nil }

// waitForEntry drains entries until one matches level and a message
// substring, failing the test on timeout.
func waitForEntry(t *testing.T, log *recordingLogger, level, contains string) logEntry {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case entry := <-log.entries:
			if entry.level == level && strings.Contains(entry.message, contains) {
				return entry
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s log containing %q", level, contains)
		}
	}
}

type stubComplianceService struct {
	err   error
	calls chan uuid.UUID
}

func (s *stubComplianceService) ProcessDocument(_ context.Context, documentId uuid.UUID) error {
	select {
	case s.calls <- documentId:
	default:
	}
	return s.err
}

func startConsumer(t *testing.T, topic string, processErr error) (*gochannel.GoChannel, *recordingLogger, *stubComplianceService) {
	t.Helper()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	t.Cleanup(func() { pubSub.Close() })

	log := newRecordingLogger()
	compliance := &stubComplianceService{err: processErr, calls: make(chan uuid.UUID, 16)}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	consumer := NewConsumerService(pubSub, topic, compliance, log)
	if err := consumer.Consume(ctx); err != nil {
		t.Fatalf("Consume() error = %v", err)
	}

	return pubSub, log, compliance
}

func publishDocument(t *testing.T, pubSub *gochannel.GoChannel, topic string, documentId uuid.UUID) {
	t.Helper()
	payload, err := json.Marshal(dto.ProcessDocumentMessage{DocumentId: documentId})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	if err := pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		t.Fatalf("publish: %v", err)
	}
}

func TestConsumerLogsProcessedDocument(t *testing.T) {
	topic := "consume-success"
	pubSub, log, compliance := startConsumer(t, topic, nil)

	documentId := uuid.New()
	publishDocument(t, pubSub, topic, documentId)

	select {
	case got := <-compliance.calls:
		if got != documentId {
			t.Fatalf("ProcessDocument called with %s, want %s", got, documentId)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ProcessDocument was never called")
	}

	entry := waitForEntry(t, log, "INFO", "Document processed")
	if entry.module != "ConsumerService" {
		t.Errorf("log module = %q, want ConsumerService", entry.module)
	}
	if !strings.Contains(entry.message, documentId.String()) {
		t.Errorf("log message %q missing document id %s", entry.message, documentId)
	}
}

func TestConsumerLogsInvalidPayload(t *testing.T) {
	topic := "consume-invalid"
	pubSub, log, compliance := startConsumer(t, topic, nil)

	if err := pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), []byte("not json"))); err != nil {
		t.Fatalf("publish: %v", err)
	}

	waitForEntry(t, log, "ERROR", "Failed to unmarshal message")

	select {
	case got := <-compliance.calls:
		t.Fatalf("ProcessDocument unexpectedly called with %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestConsumerLogsTerminalFailure(t *testing.T) {
	topic := "consume-terminal"
	pubSub, log, _ := startConsumer(t, topic, apperr.ErrDocumentNotFound)

	documentId := uuid.New()
	publishDocument(t, pubSub, topic, documentId)

	entry := waitForEntry(t, log, "WARN", "processing ended")
	if !strings.Contains(entry.message, documentId.String()) {
		t.Errorf("log message %q missing document id %s", entry.message, documentId)
	}
}
