package sqs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/breezy-weather/breezy-weather-sub005/pkg/log"
)

// Handler processes one SQS message. A nil error acknowledges the message.
type Handler interface {
	HandleMessage(ctx context.Context, msg *types.Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, msg *types.Message) error

func (f HandlerFunc) HandleMessage(ctx context.Context, msg *types.Message) error {
	return f(ctx, msg)
}

// WorkerConfig defines the configuration options for a Worker.
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
}

// Health status values reported by a worker.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// Health is a point-in-time worker health snapshot.
type Health struct {
	Status  string
	Details map[string]string
}

// Worker long-polls an SQS queue and dispatches messages to a handler with
// a fixed-size goroutine pool.
type Worker struct {
	client              API
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	handler             Handler

	mu      sync.RWMutex
	running bool
	lastErr error
}

// NewWorker creates a Worker. Defaults: 10 messages per poll, 20 seconds
// long-poll wait, pool of 1.
func NewWorker(ctx context.Context, client API, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var maxMessages int32 = 10
	var waitTime int32 = 20
	poolSize := 1

	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 1 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 1 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}

	out, err := client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve queue url for %s: %w", queueName, err)
	}

	return &Worker{
		client:              client,
		queueName:           queueName,
		queueURL:            aws.ToString(out.QueueUrl),
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		handler:             handler,
	}, nil
}

// Start polls the queue until the context ends. Each received message is
// handled by the pool; successfully handled messages are deleted.
func (w *Worker) Start(ctx context.Context) {
	messages := make(chan types.Message)
	var wg sync.WaitGroup

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for msg := range messages {
				w.process(ctx, msg)
			}
		}()
	}

	w.setRunning(true)
	log.Infof("SQS worker started for queue %s with pool size %d", w.queueName, w.poolSize)

	for ctx.Err() == nil {
		out, err := w.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(w.queueURL),
			MaxNumberOfMessages: w.maxNumberOfMessages,
			WaitTimeSeconds:     w.waitTimeSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			w.setLastError(err)
			log.Errorf("Failed to receive messages from %s: %v", w.queueName, err)
			continue
		}
		w.setLastError(nil)
		for _, msg := range out.Messages {
			messages <- msg
		}
	}

	close(messages)
	wg.Wait()
	w.setRunning(false)
	log.Infof("SQS worker stopped for queue %s", w.queueName)
}

// HealthCheck reports whether the worker is polling and its last poll error.
func (w *Worker) HealthCheck() Health {
	w.mu.RLock()
	defer w.mu.RUnlock()

	details := map[string]string{"queue": w.queueName}
	if !w.running {
		details["message"] = "worker not running"
		return Health{Status: StatusDown, Details: details}
	}
	if w.lastErr != nil {
		details["message"] = w.lastErr.Error()
		return Health{Status: StatusDown, Details: details}
	}
	details["message"] = StatusUp
	return Health{Status: StatusUp, Details: details}
}

func (w *Worker) setRunning(running bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = running
}

func (w *Worker) setLastError(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastErr = err
}

func (w *Worker) process(ctx context.Context, msg types.Message) {
	if err := w.handler.HandleMessage(ctx, &msg); err != nil {
		log.Errorf("Failed to handle message %s: %v", aws.ToString(msg.MessageId), err)
		return
	}
	if _, err := w.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	}); err != nil {
		log.Errorf("Failed to delete message %s: %v", aws.ToString(msg.MessageId), err)
	}
}
