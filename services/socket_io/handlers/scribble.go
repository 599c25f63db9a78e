package handlers

import (
	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleDraw relays a stroke point to everyone else in the room. Pure
// fan-out, no ack, no validation; unknown rooms are dropped silently.
func HandleDraw(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		p := utils.AsPayload(args)
		reg.RelayDraw(p.String("roomId"), string(client.Id()), p["point"])
	}
}

// HandleGuess submits a chat guess. Works as plain chat in any variant and
// scores in scribble rooms.
func HandleGuess(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		res, err := reg.Guess(p.String("roomId"), string(client.Id()), p.String("guess"))
		if err != nil {
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}
