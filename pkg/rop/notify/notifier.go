package notify

import "sync"

// Handle identifies one subscription. The zero Handle is never issued.
type Handle uint64

type slot[E any] struct {
	handle Handle
	fn     func(E)
}

// Notifier broadcasts events to subscribed callbacks. It is safe for
// concurrent use. The slot slice is copy-on-write so a delivery round
// iterates a stable snapshot while subscriptions change underneath it.
type Notifier[E any] struct {
	mu     sync.Mutex
	last   Handle
	slots  []slot[E]
	closed bool
	done   chan struct{}
}

func New[E any]() *Notifier[E] {
	return &Notifier[E]{done: make(chan struct{})}
}

// Subscribe registers fn and returns its handle. A nil fn, or a closed
// Notifier, yields the zero Handle and nothing is registered.
func (n *Notifier[E]) Subscribe(fn func(E)) Handle {
	if fn == nil {
		return 0
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return 0
	}

	n.last++
	next := make([]slot[E], len(n.slots), len(n.slots)+1)
	copy(next, n.slots)
	n.slots = append(next, slot[E]{handle: n.last, fn: fn})
	return n.last
}

// Unsubscribe removes the callback for h. It reports whether h was registered.
func (n *Notifier[E]) Unsubscribe(h Handle) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.slots {
		if s.handle != h {
			continue
		}
		next := make([]slot[E], 0, len(n.slots)-1)
		next = append(next, n.slots[:i]...)
		next = append(next, n.slots[i+1:]...)
		n.slots = next
		return true
	}
	return false
}

// Notify delivers event to every callback registered at the moment of the
// call, in subscription order, on the calling goroutine.
func (n *Notifier[E]) Notify(event E) {
	n.mu.Lock()
	snapshot := n.slots
	n.mu.Unlock()

	for _, s := range snapshot {
		s.fn(event)
	}
}

func (n *Notifier[E]) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.slots)
}

// Close detaches every callback. Later Subscribe calls are ignored.
func (n *Notifier[E]) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	n.slots = nil
	close(n.done)
}

// Done is closed when the Notifier is closed.
func (n *Notifier[E]) Done() <-chan struct{} {
	return n.done
}

func (n *Notifier[E]) Closed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}
