package game

import (
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeBroadcaster records every emit so tests can assert on the event stream
// without a socket.io server.
type fakeBroadcaster struct {
	mu     sync.Mutex
	events []emittedEvent
}

type emittedEvent struct {
	Room    string
	Event   string
	Payload interface{}
	Except  string // set for ToRoomExcept
	Player  string // set for ToPlayer
}

func (f *fakeBroadcaster) ToRoom(code string, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, emittedEvent{Room: code, Event: event, Payload: payload})
}

func (f *fakeBroadcaster) ToRoomExcept(code string, playerID string, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, emittedEvent{Room: code, Event: event, Payload: payload, Except: playerID})
}

func (f *fakeBroadcaster) ToPlayer(playerID string, event string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, emittedEvent{Room: playerID, Event: event, Payload: payload, Player: playerID})
}

func (f *fakeBroadcaster) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

func (f *fakeBroadcaster) byName(event string) []emittedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []emittedEvent
	for _, ev := range f.events {
		if ev.Event == event {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeBroadcaster) last(t *testing.T, event string) gin.H {
	t.Helper()
	matches := f.byName(event)
	if !assert.NotEmpty(t, matches, "expected at least one %q event", event) {
		t.FailNow()
	}
	payload, ok := matches[len(matches)-1].Payload.(gin.H)
	if !assert.True(t, ok, "payload of %q is not gin.H", event) {
		t.FailNow()
	}
	return payload
}

func (f *fakeBroadcaster) has(event string) bool {
	return len(f.byName(event)) > 0
}

// newTestRoom creates a registry with a recording broadcaster and a room
// hosted by p1/Alice, then joins the extra players p2, p3, ... in order.
func newTestRoom(t *testing.T, gt GameType, settings Settings, extraPlayers ...string) (*Registry, *fakeBroadcaster, *Room) {
	t.Helper()
	fake := &fakeBroadcaster{}
	reg := NewRegistry(fake)

	r, err := reg.CreateRoom("p1", "Alice", "Test Room", gt, settings)
	assert.NoError(t, err)

	names := []string{"Bob", "Carol", "Dave", "Eve"}
	for i, id := range extraPlayers {
		_, err := reg.Join(r.Code, id, names[i%len(names)], nil)
		assert.NoError(t, err)
	}
	fake.reset()
	return reg, fake, r
}

// readRoom runs fn with the room lock held so direct field reads do not race
// the round ticker.
func readRoom(r *Room, fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}
