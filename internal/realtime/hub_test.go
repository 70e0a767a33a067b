package realtime

import "testing"

func TestHubScopesByUser(t *testing.T) {
	h := NewHub()
	alice, cancelAlice := h.Subscribe("alice")
	bob, cancelBob := h.Subscribe("bob")
	defer cancelAlice()
	defer cancelBob()

	h.Publish("alice")

	select {
	case <-alice:
	default:
		t.Error("alice should have a pending signal")
	}
	select {
	case <-bob:
		t.Error("bob should not be signalled for alice's writes")
	default:
	}
}

func TestHubCoalesces(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("alice")
	defer cancel()

	h.Publish("alice")
	h.Publish("alice")
	h.Publish("alice")

	<-ch
	select {
	case <-ch:
		t.Error("expected signals to coalesce into one")
	default:
	}
}

func TestHubCancel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("alice")
	if got := h.Subscribers("alice"); got != 1 {
		t.Fatalf("Subscribers = %d, want 1", got)
	}

	cancel()
	cancel() // idempotent

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancel")
	}
	if got := h.Subscribers("alice"); got != 0 {
		t.Errorf("Subscribers after cancel = %d, want 0", got)
	}
	h.Publish("alice") // no subscribers, must not panic
}
