// Package viewport owns the measured viewport size and notifies subscribers
// when it changes.
package viewport

import (
	"sync"

	"github.com/alexisbeaulieu97/gridkit/internal/logger"
)

// Size is a viewport measurement.
type Size struct {
	Width  int
	Height int
}

type subscription struct {
	id uint64
	fn func(width, height int)
}

// Observer holds the current viewport size. Subscribers are notified
// synchronously, in subscription order, on the goroutine that calls Update.
type Observer struct {
	mu       sync.Mutex
	size     Size
	measured bool
	nextID   uint64
	subs     []subscription
	log      *logger.Logger
}

// NewObserver creates an observer with no measurement.
func NewObserver(log *logger.Logger) *Observer {
	return &Observer{log: log}
}

// Current returns the last measurement and whether one has been made.
func (o *Observer) Current() (int, int, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.size.Width, o.size.Height, o.measured
}

// Size returns the last measurement.
func (o *Observer) Size() (Size, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.size, o.measured
}

// Update records a new measurement and notifies subscribers. A measurement
// equal to the current one is ignored. Non-positive widths are rejected.
func (o *Observer) Update(width, height int) bool {
	if width <= 0 {
		return false
	}
	if height < 0 {
		height = 0
	}

	o.mu.Lock()
	next := Size{Width: width, Height: height}
	if o.measured && o.size == next {
		o.mu.Unlock()
		return false
	}
	o.size = next
	o.measured = true
	subs := append([]subscription(nil), o.subs...)
	o.mu.Unlock()

	o.log.WithFields(map[string]any{"width": width, "height": height, "subscribers": len(subs)}).Debug("viewport changed")
	for _, sub := range subs {
		sub.fn(width, height)
	}
	return true
}

// Subscribe registers fn for future changes. The returned func removes the
// subscription and is safe to call more than once.
func (o *Observer) Subscribe(fn func(width, height int)) func() {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.subs = append(o.subs, subscription{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { o.unsubscribe(id) })
	}
}

func (o *Observer) unsubscribe(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, sub := range o.subs {
		if sub.id == id {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}

// Subscribers returns the number of active subscriptions.
func (o *Observer) Subscribers() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.subs)
}
