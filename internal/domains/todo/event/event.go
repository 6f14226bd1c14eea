package event

import (
	"context"
	"tick/config"
	"tick/infras/kafka"
	"tick/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

type TodoEvent struct {
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits todo lifecycle events. Publishing is fire-and-forget:
// a broker failure is logged and never surfaced to the request.
type Publisher interface {
	TodoChanged(ctx context.Context, action Action, id, userID string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func New(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) TodoChanged(ctx context.Context, action Action, id, userID string) {
	if !p.cfg.Kafka.Enable {
		return
	}

	evt := TodoEvent{
		Action:     action,
		ID:         id,
		UserID:     userID,
		OccurredAt: timezone.Now(),
	}

	// Detach from the request context so a finished request does not
	// cancel an in-flight publish.
	go func() {
		ctx := context.Background()

		err := p.client.SendMessages(ctx, p.cfg.Kafka.TodoTopic, kafka.Message{
			Key:   id,
			Value: evt,
		})
		if err != nil {
			log.Error().
				Err(err).
				Str("action", string(action)).
				Str("user_id", userID).
				Msg("failed to publish todo event")
		}
	}()
}
