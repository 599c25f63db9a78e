package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleWordchainSubmit submits the next chain word. Turn order, chain
// continuity and uniqueness are all enforced by the engine; rejections reach
// only the submitting client.
func HandleWordchainSubmit(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		res, err := reg.SubmitWord(p.String("roomId"), string(client.Id()), p.String("word"))
		if err != nil {
			log.Printf("[WORDCHAIN-ERROR] Room %s: %v", p.String("roomId"), err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}
