package socket_io

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/services/socket_io/handlers"
	socketio_types "github.com/M-Destiny/mini-games-hub/services/socket_io/types"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the socket.io server on the gin router and wires every game
// action to its handler. The registry broadcasts back through the same
// server via the SocketServer's Broadcaster methods.
func (sio *MySocketServer) Start(router *gin.Engine, reg *game.Registry) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and
	// 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Connections = make(map[socket.SocketId]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		(*socketio_types.SocketServer)(sio).AddConnection(client)
		log.Printf("[CONNECT] Client connected: %s", client.Id())

		// Room lifecycle
		client.On("create-room", handlers.HandleCreateRoom(reg, client))
		client.On("join-room", handlers.HandleJoinRoom(reg, client))
		client.On("start-game", handlers.HandleStartGame(reg, client))
		client.On("leave-room", handlers.HandleLeaveRoom(reg, client))

		// Scribble
		client.On("draw", handlers.HandleDraw(reg, client))
		client.On("guess", handlers.HandleGuess(reg, client))

		// Hangman
		client.On("hangman-guess", handlers.HandleHangmanGuess(reg, client))

		// Word chain
		client.On("wordchain-submit", handlers.HandleWordchainSubmit(reg, client))

		// Trivia
		client.On("trivia-submit", handlers.HandleTriviaSubmit(reg, client))

		// Codenames
		client.On("start-codenames", handlers.HandleStartCodenames(reg, client))
		client.On("codenames-clue", handlers.HandleCodenamesClue(reg, client))
		client.On("codenames-guess", handlers.HandleCodenamesGuess(reg, client))

		// NOTE: will remove the sio connection from the map and run the
		// same membership cleanup as an explicit leave
		client.On("disconnecting", handlers.HandleDisconnecting(reg, client,
			(*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	log.Println("Socket server started")
}

// Close shuts the socket.io server down, used on SIGINT/SIGTERM.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
