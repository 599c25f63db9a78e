package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleHangmanGuess submits one letter. Repeated letters come back as
// {success:false, error:"Already guessed"}.
func HandleHangmanGuess(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		res, err := reg.GuessLetter(p.String("roomId"), string(client.Id()), p.String("letter"))
		if err != nil {
			log.Printf("[HANGMAN-ERROR] Room %s: %v", p.String("roomId"), err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}
