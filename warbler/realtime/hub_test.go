package realtime

import (
	"testing"
	"time"

	"warbler/warbler/sources/psql/models"
)

func TestPublishReachesInterestedSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe([]uint{1, 2})
	defer hub.Unsubscribe(sub)

	hub.Publish(models.Message{ID: 10, UserID: 2, Text: "hello"})

	select {
	case msg := <-sub.C:
		if msg.ID != 10 {
			t.Errorf("unexpected message %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected a delivered message")
	}
}

func TestPublishSkipsUninterestedSubscriber(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe([]uint{1})
	defer hub.Unsubscribe(sub)

	hub.Publish(models.Message{ID: 11, UserID: 99})

	select {
	case msg := <-sub.C:
		t.Errorf("did not expect delivery, got %+v", msg)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe([]uint{1})
	hub.Unsubscribe(sub)

	if _, ok := <-sub.C; ok {
		t.Errorf("expected channel closed after unsubscribe")
	}

	// Double unsubscribe must not panic.
	hub.Unsubscribe(sub)

	// Publishing after unsubscribe must not panic either.
	hub.Publish(models.Message{ID: 12, UserID: 1})
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe([]uint{1})
	defer hub.Unsubscribe(sub)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// More than the channel buffer; Publish must never block.
		for i := 0; i < 100; i++ {
			hub.Publish(models.Message{ID: uint(i), UserID: 1})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("publish blocked on a slow subscriber")
	}
}
