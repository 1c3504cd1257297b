package syncs

import "context"

// Semaphore bounds concurrent work to its capacity.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(Semaphore, max(1, n))
}

// Acquire takes a slot, or returns ctx.Err() if ctx is done first.
func (s Semaphore) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
