package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// SocketServer bundles the socket.io server with a map of live connections.
// The connection id doubles as the player id, so targeted emits go through
// the per-socket room that socket.io joins every client to.
type SocketServer struct {
	Sio_server *socket.Server
	// Map to track connection id -> socket
	Connections map[socket.SocketId]*socket.Socket
	mutex       sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		Connections: make(map[socket.SocketId]*socket.Socket),
	}
}

func (s *SocketServer) AddConnection(client *socket.Socket) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.Connections[client.Id()] = client
}

func (s *SocketServer) RemoveConnection(id socket.SocketId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.Connections, id)
}

func (s *SocketServer) GetConnection(id socket.SocketId) (*socket.Socket, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	client, exists := s.Connections[id]
	return client, exists
}

// ConnectionCount reports how many clients are connected, for the liveness
// endpoint.
func (s *SocketServer) ConnectionCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.Connections)
}

// ToRoom, ToRoomExcept and ToPlayer implement the game core's Broadcaster
// capability on top of socket.io rooms.
func (s *SocketServer) ToRoom(code string, event string, payload interface{}) {
	s.Sio_server.To(socket.Room(code)).Emit(event, payload)
}

func (s *SocketServer) ToRoomExcept(code string, playerID string, event string, payload interface{}) {
	s.Sio_server.To(socket.Room(code)).Except(socket.Room(playerID)).Emit(event, payload)
}

func (s *SocketServer) ToPlayer(playerID string, event string, payload interface{}) {
	s.Sio_server.To(socket.Room(playerID)).Emit(event, payload)
}
