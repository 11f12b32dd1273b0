package notify

import (
	"context"
	"sync"
)

// Stream forwards every event from n to the returned channel until ctx is
// done or n is closed, then unsubscribes and closes the channel. Delivery
// blocks the notifying goroutine while the channel is full.
func Stream[E any](ctx context.Context, n *Notifier[E], buffer int) <-chan E {
	out := make(chan E, buffer)

	var mu sync.Mutex
	stopped := false

	h := n.Subscribe(func(e E) {
		mu.Lock()
		defer mu.Unlock()

		if stopped {
			return
		}

		select {
		case out <- e:
		case <-ctx.Done():
		case <-n.Done():
		}
	})

	if h == 0 {
		close(out)
		return out
	}

	go func() {
		select {
		case <-ctx.Done():
		case <-n.Done():
		}

		n.Unsubscribe(h)

		mu.Lock()
		stopped = true
		close(out)
		mu.Unlock()
	}()

	return out
}
