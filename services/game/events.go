package game

import "github.com/gin-gonic/gin"

// Scope selects who receives an outbound event.
type Scope int

const (
	// ScopeRoom delivers to every member of the room.
	ScopeRoom Scope = iota
	// ScopePlayer delivers to a single player.
	ScopePlayer
)

// Event is one outbound broadcast produced by an engine. The registry
// translates events into socket.io emissions through the Broadcaster.
type Event struct {
	Name     string
	Payload  gin.H
	Scope    Scope
	PlayerID string // target for ScopePlayer
}

func broadcast(name string, payload gin.H) Event {
	return Event{Name: name, Payload: payload, Scope: ScopeRoom}
}

func toPlayer(playerID, name string, payload gin.H) Event {
	return Event{Name: name, Payload: payload, Scope: ScopePlayer, PlayerID: playerID}
}

// Broadcaster is the connection-identity capability the game core consumes.
// The socket.io layer implements it; tests use a recording fake.
type Broadcaster interface {
	// ToRoom emits to every client joined to the room's group.
	ToRoom(code string, event string, payload interface{})
	// ToRoomExcept emits to the room's group excluding one player.
	ToRoomExcept(code string, playerID string, event string, payload interface{})
	// ToPlayer emits to one connected player.
	ToPlayer(playerID string, event string, payload interface{})
}
