// Package notify implements the in-memory notification broadcaster: a
// publish/subscribe channel of timestamped, typed, auto-expiring messages.
// Nothing here touches persistence.
package notify

import (
	"sync"
	"time"

	"financetracker/internal/core"
)

// DefaultDuration is the auto-expiry applied when a convenience constructor
// does not choose its own. A Duration of exactly 0 disables expiry; the
// notification stays until dismissed.
const DefaultDuration = 5 * time.Second

// Subscriber receives the full current notification list, newest first, on
// every change.
type Subscriber func([]core.Notification)

type Broadcaster struct {
	mu            sync.Mutex
	defaultTTL    time.Duration
	notifications []core.Notification
	subscribers   map[int]Subscriber
	nextSubID     int
	nextID        int
	// Pending expiry timers by notification id, cancelled on early
	// dismissal and on Close so a torn-down broadcaster leaks no
	// callbacks. Cancellation is an optimization only; removal by id is
	// idempotent either way.
	timers map[int]*time.Timer
	closed bool
}

func NewBroadcaster() *Broadcaster {
	return NewBroadcasterWithTTL(DefaultDuration)
}

func NewBroadcasterWithTTL(ttl time.Duration) *Broadcaster {
	return &Broadcaster{
		defaultTTL:  ttl,
		subscribers: make(map[int]Subscriber),
		timers:      make(map[int]*time.Timer),
	}
}

// Subscribe registers callback for every list change and returns the
// matching unsubscribe function.
func (b *Broadcaster) Subscribe(callback Subscriber) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextSubID++
	id := b.nextSubID
	b.subscribers[id] = callback

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subscribers, id)
	}
}

// Publish assigns a monotonic id and timestamp, fills per-type icon/title
// defaults, prepends the notification and synchronously notifies every
// subscriber. Unless Duration is exactly 0, removal is scheduled after it
// elapses. Returns the assigned id, or 0 when the broadcaster is closed.
func (b *Broadcaster) Publish(n core.Notification) int {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return 0
	}

	b.nextID++
	n.ID = b.nextID
	n.Timestamp = time.Now()
	if n.Type == "" {
		n.Type = core.NotifyInfo
	}
	if n.Icon == "" {
		n.Icon = n.Type.DefaultIcon()
	}
	if n.Title == "" {
		n.Title = n.Type.DefaultTitle()
	}

	b.notifications = append([]core.Notification{n}, b.notifications...)

	if n.Duration != 0 {
		id := n.ID
		b.timers[id] = time.AfterFunc(n.Duration, func() {
			b.Dismiss(id)
		})
	}

	b.fanOutLocked()
	return n.ID
}

// Dismiss removes one notification by id and re-notifies subscribers. A
// missing id, including one already auto-expired, is a no-op.
func (b *Broadcaster) Dismiss(id int) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	if timer, ok := b.timers[id]; ok {
		timer.Stop()
		delete(b.timers, id)
	}

	found := false
	kept := b.notifications[:0]
	for _, n := range b.notifications {
		if n.ID == id {
			found = true
			continue
		}
		kept = append(kept, n)
	}
	b.notifications = kept

	if !found {
		b.mu.Unlock()
		return
	}
	b.fanOutLocked()
}

// ClearAll empties the list, cancels pending expiries and re-notifies.
func (b *Broadcaster) ClearAll() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.notifications = nil
	b.fanOutLocked()
}

// MarkRead flags one notification as read and re-notifies.
func (b *Broadcaster) MarkRead(id int) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	for i := range b.notifications {
		if b.notifications[i].ID == id {
			b.notifications[i].Read = true
			b.fanOutLocked()
			return
		}
	}
	b.mu.Unlock()
}

// MarkAllRead flags every notification as read and re-notifies.
func (b *Broadcaster) MarkAllRead() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}

	for i := range b.notifications {
		b.notifications[i].Read = true
	}
	b.fanOutLocked()
}

// Notifications returns a snapshot of the current list, newest first.
func (b *Broadcaster) Notifications() []core.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]core.Notification(nil), b.notifications...)
}

// Count returns the number of notifications of one type, or of all when
// kind is empty.
func (b *Broadcaster) Count(kind core.NotificationType) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if kind == "" {
		return len(b.notifications)
	}
	count := 0
	for _, n := range b.notifications {
		if n.Type == kind {
			count++
		}
	}
	return count
}

// Close cancels every pending expiry and drops all subscribers. Further
// publishes are ignored.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, timer := range b.timers {
		timer.Stop()
		delete(b.timers, id)
	}
	b.subscribers = map[int]Subscriber{}
}

// fanOutLocked snapshots state, releases the lock and invokes every
// subscriber in the caller's goroutine. Called with b.mu held; returns with
// it released, so callbacks may safely re-enter the broadcaster.
func (b *Broadcaster) fanOutLocked() {
	list := append([]core.Notification(nil), b.notifications...)
	subs := make([]Subscriber, 0, len(b.subscribers))
	for _, s := range b.subscribers {
		subs = append(subs, s)
	}
	b.mu.Unlock()

	for _, s := range subs {
		s(list)
	}
}
