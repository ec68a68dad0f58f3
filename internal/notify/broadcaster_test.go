package notify

import (
	"testing"
	"time"

	"financetracker/internal/core"
)

func TestPublish_AssignsIDsAndDefaults(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	first := b.Publish(core.Notification{Message: "one", Duration: 0})
	second := b.Publish(core.Notification{Message: "two", Duration: 0})

	if first != 1 || second != 2 {
		t.Errorf("Publish() ids = %d, %d, want 1, 2", first, second)
	}

	list := b.Notifications()
	if len(list) != 2 {
		t.Fatalf("Notifications() = %d, want 2", len(list))
	}
	// Newest first.
	if list[0].Message != "two" || list[1].Message != "one" {
		t.Errorf("Notifications() order = %q, %q, want newest first", list[0].Message, list[1].Message)
	}

	n := list[0]
	if n.Type != core.NotifyInfo {
		t.Errorf("Publish() default type = %q, want info", n.Type)
	}
	if n.Icon == "" || n.Title == "" {
		t.Errorf("Publish() left icon/title empty: %+v", n)
	}
	if n.Timestamp.IsZero() {
		t.Error("Publish() left timestamp zero")
	}
}

func TestPublish_AutoExpiry(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	b.Publish(core.Notification{Message: "fleeting", Duration: 50 * time.Millisecond})

	if got := b.Count(""); got != 1 {
		t.Fatalf("Count() right after publish = %d, want 1", got)
	}

	time.Sleep(150 * time.Millisecond)

	if got := b.Count(""); got != 0 {
		t.Errorf("Count() after expiry window = %d, want 0", got)
	}
}

func TestPublish_ZeroDurationPersists(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	b.Publish(core.Notification{Message: "sticky", Duration: 0})

	time.Sleep(50 * time.Millisecond)

	if got := b.Count(""); got != 1 {
		t.Errorf("Count() = %d, want persistent notification still present", got)
	}
}

func TestError_Persists(t *testing.T) {
	b := NewBroadcasterWithTTL(20 * time.Millisecond)
	defer b.Close()

	b.Error("Oops", "something broke")
	b.Success("Fine", "all good")

	time.Sleep(100 * time.Millisecond)

	if got := b.Count(core.NotifyError); got != 1 {
		t.Errorf("Count(error) = %d, want error to outlive the TTL", got)
	}
	if got := b.Count(core.NotifySuccess); got != 0 {
		t.Errorf("Count(success) = %d, want success expired", got)
	}
}

func TestDismiss(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	id := b.Publish(core.Notification{Message: "gone soon", Duration: 0})
	keep := b.Publish(core.Notification{Message: "stays", Duration: 0})

	b.Dismiss(id)

	list := b.Notifications()
	if len(list) != 1 || list[0].ID != keep {
		t.Errorf("Notifications() after dismiss = %+v, want only id %d", list, keep)
	}

	// Dismissing again, or dismissing an unknown id, changes nothing.
	b.Dismiss(id)
	b.Dismiss(9999)
	if got := b.Count(""); got != 1 {
		t.Errorf("Count() = %d after repeated dismiss, want 1", got)
	}
}

func TestClearAll(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	b.Publish(core.Notification{Message: "a", Duration: 0})
	b.Publish(core.Notification{Message: "b", Duration: time.Hour})

	b.ClearAll()

	if got := b.Count(""); got != 0 {
		t.Errorf("Count() after ClearAll = %d, want 0", got)
	}
}

func TestMarkRead(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	id := b.Publish(core.Notification{Message: "a", Duration: 0})
	b.Publish(core.Notification{Message: "b", Duration: 0})

	b.MarkRead(id)

	for _, n := range b.Notifications() {
		want := n.ID == id
		if n.Read != want {
			t.Errorf("notification %d read = %v, want %v", n.ID, n.Read, want)
		}
	}

	b.MarkAllRead()
	for _, n := range b.Notifications() {
		if !n.Read {
			t.Errorf("notification %d unread after MarkAllRead", n.ID)
		}
	}
}

func TestSubscribe(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	var calls int
	var lastSeen []core.Notification
	unsubscribe := b.Subscribe(func(list []core.Notification) {
		calls++
		lastSeen = list
	})

	b.Publish(core.Notification{Message: "hello", Duration: 0})
	if calls != 1 {
		t.Fatalf("subscriber called %d times, want 1", calls)
	}
	if len(lastSeen) != 1 || lastSeen[0].Message != "hello" {
		t.Errorf("subscriber saw %+v, want the published notification", lastSeen)
	}

	unsubscribe()
	b.Publish(core.Notification{Message: "silent", Duration: 0})
	if calls != 1 {
		t.Errorf("subscriber called %d times after unsubscribe, want 1", calls)
	}
}

func TestClose_StopsEverything(t *testing.T) {
	b := NewBroadcaster()

	var calls int
	b.Subscribe(func([]core.Notification) { calls++ })

	b.Publish(core.Notification{Message: "before", Duration: 0})
	b.Close()

	if id := b.Publish(core.Notification{Message: "after", Duration: 0}); id != 0 {
		t.Errorf("Publish() after Close = %d, want 0", id)
	}
	if calls != 1 {
		t.Errorf("subscriber called %d times, want 1", calls)
	}

	// Closing twice is safe.
	b.Close()
}

func TestGoalMilestone_Bands(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		published  bool
	}{
		{"below first milestone", 20, false},
		{"at 25", 25, true},
		{"just inside the band", 29.9, true},
		{"past the band", 30, false},
		{"at 90", 92, true},
		{"past 95", 96, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBroadcaster()
			defer b.Close()

			id := b.GoalMilestone(core.SavingsGoal{Name: "Trip"}, tt.percentage)
			if (id != 0) != tt.published {
				t.Errorf("GoalMilestone(%v) = %d, want published=%v", tt.percentage, id, tt.published)
			}
		})
	}
}

func TestRecurringProcessed(t *testing.T) {
	b := NewBroadcaster()
	defer b.Close()

	if id := b.RecurringProcessed(0); id != 0 {
		t.Errorf("RecurringProcessed(0) = %d, want 0", id)
	}
	if id := b.RecurringProcessed(3); id == 0 {
		t.Error("RecurringProcessed(3) = 0, want a published notification")
	}
}
