package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleTriviaSubmit records a player's answer letter for the current
// question. One answer per player per question.
func HandleTriviaSubmit(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		res, err := reg.SubmitAnswer(p.String("roomId"), string(client.Id()), p.String("answer"))
		if err != nil {
			log.Printf("[TRIVIA-ERROR] Room %s: %v", p.String("roomId"), err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}
