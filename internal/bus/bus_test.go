package bus

import (
	"testing"
	"time"
)

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("sample.", 10)
	defer unsub()

	b.Publish(Event{Kind: KindSampleSaved, Timestamp: time.Now(), Payload: SampleRef{ID: "s1"}})

	select {
	case evt := <-ch:
		if evt.Kind != KindSampleSaved {
			t.Errorf("got kind %q, want %s", evt.Kind, KindSampleSaved)
		}
		if evt.ID == "" {
			t.Error("published event has no ID")
		}
		if ref, ok := evt.Payload.(SampleRef); !ok || ref.ID != "s1" {
			t.Errorf("payload = %#v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("daemon.", 10)
	defer unsub()

	b.Publish(Event{Kind: KindSampleSaved})
	b.Publish(Event{Kind: KindStatusChanged})

	select {
	case evt := <-ch:
		if evt.Kind != KindStatusChanged {
			t.Errorf("got kind %q, want %s", evt.Kind, KindStatusChanged)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	// Ensure the sample event was not delivered.
	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("sample.", 10)
	unsub()
	unsub()

	b.Publish(Event{Kind: KindSampleDeleted})

	if _, ok := <-ch; ok {
		t.Error("received event after unsubscribe")
	}
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers())
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("test.", 1)
	defer unsub()

	// Fill buffer.
	b.Publish(Event{Kind: "test.one"})
	// This should be dropped (non-blocking).
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
	if b.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", b.Dropped())
	}
}

func TestClose(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe("", 1)
	b.Close()
	b.Close()
	unsub()

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after Close()")
	}
	late, _ := b.Subscribe("", 1)
	if _, ok := <-late; ok {
		t.Error("subscription after Close() should be closed")
	}
	b.Publish(Event{Kind: KindSampleSaved})
}
