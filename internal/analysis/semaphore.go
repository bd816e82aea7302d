package analysis

import "context"

// semaphore caps how many extraction calls are in flight.
type semaphore chan struct{}

func newSemaphore(capacity int) semaphore {
	return make(semaphore, capacity)
}

// acquire blocks for a slot; it gives up when ctx is done.
func (s semaphore) acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s semaphore) release() {
	<-s
}
