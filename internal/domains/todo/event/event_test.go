package event_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"tick/config"
	"tick/infras/kafka"
	kafkaMocks "tick/infras/kafka/mocks"
	"tick/internal/domains/todo/event"
)

func TestPublisher_TodoChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.TodoTopic = "todo-events"

	published := make(chan kafka.Message, 1)

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "todo-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	publisher := event.New(mockClient, cfg)
	publisher.TodoChanged(context.Background(), event.ActionCreated, "todo-1", "user-1")

	select {
	case msg := <-published:
		if msg.Key != "todo-1" {
			t.Errorf("expected message key to be 'todo-1', got %s", msg.Key)
		}

		evt, ok := msg.Value.(event.TodoEvent)
		if !ok {
			t.Fatalf("expected message value to be event.TodoEvent, got %T", msg.Value)
		}

		if evt.Action != event.ActionCreated {
			t.Errorf("expected action to be %s, got %s", event.ActionCreated, evt.Action)
		}
		if evt.UserID != "user-1" {
			t.Errorf("expected user id to be 'user-1', got %s", evt.UserID)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a message to be published")
	}
}

func TestPublisher_TodoChangedDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No SendMessages expectation: publishing is off, so any call fails the test.
	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = false

	publisher := event.New(mockClient, cfg)
	publisher.TodoChanged(context.Background(), event.ActionDeleted, "todo-1", "user-1")
}
