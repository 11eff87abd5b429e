package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduledTaskLock is a best-effort distributed lock that keeps a scheduled
// task running on a single instance. The holder refreshes the key's TTL
// periodically; when the holder dies the key expires and another instance
// can take over.
type ScheduledTaskLock struct {
	client          *Client
	key             string
	token           string
	ttl             time.Duration
	refreshInterval time.Duration
}

// NewScheduledTaskLock creates a lock for the named task in the given group.
func NewScheduledTaskLock(client *Client, taskName string, ttl, refreshInterval time.Duration, group string) *ScheduledTaskLock {
	return &ScheduledTaskLock{
		client:          client,
		key:             fmt.Sprintf("lock::%s::%s", group, taskName),
		token:           uuid.New().String(),
		ttl:             ttl,
		refreshInterval: refreshInterval,
	}
}

// Lock attempts to acquire the lock once. It fails when another instance
// holds it.
func (l *ScheduledTaskLock) Lock(ctx context.Context) error {
	acquired, err := l.client.SetNX(ctx, l.key, l.token, l.ttl)
	if err != nil {
		return fmt.Errorf("failed to acquire lock %s: %w", l.key, err)
	}
	if !acquired {
		return fmt.Errorf("lock %s is held by another instance", l.key)
	}
	return nil
}

// AutoRefresh keeps the lock alive until the context ends or a refresh
// fails. The returned channel delivers exactly one value: nil on context
// cancellation, the refresh error otherwise.
func (l *ScheduledTaskLock) AutoRefresh(ctx context.Context) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		ticker := time.NewTicker(l.refreshInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				errChan <- nil
				return
			case <-ticker.C:
				alive, err := l.client.Expire(ctx, l.key, l.ttl)
				if err != nil {
					errChan <- fmt.Errorf("failed to refresh lock %s: %w", l.key, err)
					return
				}
				if !alive {
					errChan <- fmt.Errorf("lock %s expired before refresh", l.key)
					return
				}
			}
		}
	}()

	return errChan
}

// Unlock releases the lock.
func (l *ScheduledTaskLock) Unlock(ctx context.Context) error {
	return l.client.Delete(ctx, l.key)
}
