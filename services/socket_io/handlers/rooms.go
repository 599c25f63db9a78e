package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	socketio_types "github.com/M-Destiny/mini-games-hub/services/socket_io/types"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleCreateRoom registers a new room with the requester as host and joins
// the socket to the room's broadcast group.
func HandleCreateRoom(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		playerName := p.String("playerName")
		settingsPayload := p.Object("settings")
		settings := game.DefaultSettings()
		settings.TotalRounds = settingsPayload.IntOr("rounds", settings.TotalRounds)
		settings.RoundTime = settingsPayload.IntOr("roundTime", settings.RoundTime)
		if c := settingsPayload.String("category"); c != "" {
			settings.Category = c
		}
		if words := settingsPayload.StringSlice("customWords"); len(words) > 0 {
			settings.CustomWords = words
		}

		connID := string(client.Id())
		r, err := reg.CreateRoom(connID, playerName, p.String("roomName"),
			game.GameType(p.String("gameType")), settings)
		if err != nil {
			log.Printf("[CREATE-ERROR] %s: %v", playerName, err)
			ackError(client, ack, err)
			return
		}

		client.Join(socket.Room(r.Code))
		snap, _ := reg.RoomSnapshot(r.Code)
		ackSuccess(ack, gin.H{"room": snap, "playerId": connID})
	}
}

// HandleJoinRoom adds the requester to an existing room. Codes are matched
// case-insensitively; joining twice is a harmless success.
func HandleJoinRoom(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		code := utils.NormalizeRoomCode(p.String("roomId"))
		connID := string(client.Id())
		res, err := reg.Join(code, connID, p.String("playerName"), func(code string) {
			client.Join(socket.Room(code))
		})
		if err != nil {
			log.Printf("[JOIN-ERROR] %s -> %s: %v", connID, code, err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}

// HandleStartGame starts the room's game. Host-only; the registry broadcasts
// game-started with the full snapshot plus the variant round-start payload.
func HandleStartGame(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		code := p.String("roomId")
		if err := reg.StartGame(code, string(client.Id())); err != nil {
			log.Printf("[START-ERROR] Room %s: %v", code, err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, nil)
	}
}

// HandleLeaveRoom removes the requester from its room, voluntarily.
func HandleLeaveRoom(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		if code, ok := reg.RoomOf(connID); ok {
			client.Leave(socket.Room(code))
		}
		reg.Leave(connID)
	}
}

// HandleDisconnecting mirrors HandleLeaveRoom for dropped connections and
// removes the socket from the connection map. Leave is idempotent, so a
// leave-room followed by the disconnect is fine.
func HandleDisconnecting(reg *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		connID := string(client.Id())
		log.Printf("[DISCONNECT] Client %s disconnecting", connID)
		reg.Leave(connID)
		sio.RemoveConnection(client.Id())
	}
}
