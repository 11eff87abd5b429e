package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// API is the subset of the SQS client the package uses.
type API interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// BatchMessage is one entry of a batch send.
type BatchMessage struct {
	MessageID string
	Body      any
}

// BatchResult reports the per-message outcome of a batch send.
type BatchResult struct {
	Successful []string
	Failed     []string
}

// Sender publishes JSON-encoded messages to SQS queues, resolving and
// caching queue URLs by name.
type Sender struct {
	client    API
	queueURLs map[string]string
}

// NewSender creates a Sender on top of the SQS client.
func NewSender(client API) *Sender {
	return &Sender{client: client, queueURLs: make(map[string]string)}
}

func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	if url, ok := s.queueURLs[queueName]; ok {
		return url, nil
	}
	out, err := s.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("failed to resolve queue url for %s: %w", queueName, err)
	}
	s.queueURLs[queueName] = aws.ToString(out.QueueUrl)
	return s.queueURLs[queueName], nil
}

// SendMessage publishes one JSON-encoded message.
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	url, err := s.queueURL(ctx, queueName)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal message body: %w", err)
	}
	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(url),
		MessageBody: aws.String(string(encoded)),
	})
	return err
}

// SendMessageBatch publishes up to 10 messages in one call and reports which
// entries succeeded and which failed.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	url, err := s.queueURL(ctx, queueName)
	if err != nil {
		return nil, err
	}

	entries := make([]types.SendMessageBatchRequestEntry, 0, len(messages))
	for _, msg := range messages {
		encoded, err := json.Marshal(msg.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message %s: %w", msg.MessageID, err)
		}
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(msg.MessageID),
			MessageBody: aws.String(string(encoded)),
		})
	}

	out, err := s.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(url),
		Entries:  entries,
	})
	if err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, entry := range out.Successful {
		result.Successful = append(result.Successful, aws.ToString(entry.Id))
	}
	for _, entry := range out.Failed {
		result.Failed = append(result.Failed, aws.ToString(entry.Id))
	}
	return result, nil
}
