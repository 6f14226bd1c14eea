package mocks

import (
	"context"
	"tick/internal/domains/todo/event"
)

type publisherImpl struct {
}

// TodoChanged implements event.Publisher.
func (p *publisherImpl) TodoChanged(_ context.Context, _ event.Action, _, _ string) {

}

func NewPublisher() event.Publisher {
	return &publisherImpl{}
}
