package core

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zes0-cmd/chat-appv2/internal/proto"
)

type sentEvent struct {
	to      ConnID
	event   string
	payload any
}

// fakeTransport records everything the hub sends.
type fakeTransport struct {
	mu         sync.Mutex
	sends      []sentEvent
	terminated []ConnID
}

func (f *fakeTransport) Send(id ConnID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sends = append(f.sends, sentEvent{to: id, event: event, payload: payload})
}

func (f *fakeTransport) SendToMany(ids []ConnID, event string, payload any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		f.sends = append(f.sends, sentEvent{to: id, event: event, payload: payload})
	}
}

func (f *fakeTransport) Terminate(id ConnID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, id)
}

func (f *fakeTransport) eventsFor(id ConnID, event string) []sentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentEvent
	for _, s := range f.sends {
		if s.to == id && s.event == event {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeTransport) wasTerminated(id ConnID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.terminated {
		if t == id {
			return true
		}
	}
	return false
}

func newTestHub(t *testing.T, opts Options) (*Hub, *fakeTransport) {
	t.Helper()

	ft := &fakeTransport{}
	logger := zerolog.Nop()
	hub := NewHub(ft, opts, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	return hub, ft
}

// mustEvent waits for the hub to send id an event of the given name and
// returns the most recent one.
func mustEvent(t *testing.T, ft *fakeTransport, id ConnID, event string) sentEvent {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if evs := ft.eventsFor(id, event); len(evs) > 0 {
			return evs[len(evs)-1]
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected event %q for %s not received", event, id)
	return sentEvent{}
}

var probeSeq int

// barrier flushes the hub's command lane: it dispatches a command from an
// unregistered probe connection and waits for the hub's reply. Once the reply
// arrives, every command dispatched before the barrier has been processed.
func barrier(t *testing.T, h *Hub, ft *fakeTransport) {
	t.Helper()

	probeSeq++
	probe := ConnID(fmt.Sprintf("probe-%d", probeSeq))
	h.Dispatch(&Command{Kind: CommandSendMessage, From: probe, Text: "x"})
	mustEvent(t, ft, probe, proto.EventSystemMessage)
}

// nameUser registers a connection under the requested name and returns the
// final name after collision resolution.
func nameUser(t *testing.T, h *Hub, ft *fakeTransport, id ConnID, name string) string {
	t.Helper()

	h.Dispatch(&Command{Kind: CommandSetName, From: id, Name: name})
	ev := mustEvent(t, ft, id, proto.EventNameSetAck)
	ack, ok := ev.payload.(proto.NameSetAck)
	if !ok {
		t.Fatalf("unexpected name_set_ack payload: %#v", ev.payload)
	}
	return ack.Name
}
