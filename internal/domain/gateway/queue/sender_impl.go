package queue

import (
	"context"

	"github.com/breezy-weather/breezy-weather-sub005/pkg/sqs"
)

// SQSSender adapts the SQS package sender to the domain interface.
type SQSSender struct {
	sender *sqs.Sender
}

var _ Sender = (*SQSSender)(nil)

func NewSQSSender(sender *sqs.Sender) *SQSSender {
	return &SQSSender{sender: sender}
}

func (s *SQSSender) SendMessage(ctx context.Context, queueName string, body any) error {
	return s.sender.SendMessage(ctx, queueName, body)
}

func (s *SQSSender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	entries := make([]sqs.BatchMessage, 0, len(messages))
	for _, msg := range messages {
		entries = append(entries, sqs.BatchMessage{MessageID: msg.MessageID, Body: msg.Body})
	}

	out, err := s.sender.SendMessageBatch(ctx, queueName, entries)
	if err != nil {
		return nil, err
	}
	return &BatchResult{Successful: out.Successful, Failed: out.Failed}, nil
}
