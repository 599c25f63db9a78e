package handlers

import (
	"log"

	"github.com/zishang520/socket.io/v2/socket"

	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// HandleStartCodenames is the codenames client's dedicated start action. It
// runs the same host-only start flow as start-game.
func HandleStartCodenames(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		code := p.String("roomId")
		if err := reg.StartGame(code, string(client.Id())); err != nil {
			log.Printf("[CODENAMES-ERROR] Start room %s: %v", code, err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, nil)
	}
}

// HandleCodenamesClue sets the active clue, spymaster-only.
func HandleCodenamesClue(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)
		cluePayload := p.Object("clue")

		res, err := reg.GiveClue(p.String("roomId"), string(client.Id()),
			cluePayload.String("word"), cluePayload.Int("number"))
		if err != nil {
			log.Printf("[CODENAMES-ERROR] Clue in room %s: %v", p.String("roomId"), err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}

// HandleCodenamesGuess reveals the card at the given board index for an
// operative of the active team.
func HandleCodenamesGuess(reg *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		ack, rest := extractAck(args)
		p := utils.AsPayload(rest)

		res, err := reg.GuessCard(p.String("roomId"), string(client.Id()), p.IntOr("index", -1))
		if err != nil {
			log.Printf("[CODENAMES-ERROR] Guess in room %s: %v", p.String("roomId"), err)
			ackError(client, ack, err)
			return
		}
		ackSuccess(ack, res)
	}
}
