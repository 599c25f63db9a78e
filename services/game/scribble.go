package game

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
)

// scribbleEngine: one player draws the secret word, everyone else guesses in
// chat. A correct guess or the countdown hitting zero advances the round,
// and the drawer role rotates through join order.
type scribbleEngine struct{}

func (scribbleEngine) start(r *Room) []Event {
	r.Scribble = &ScribbleState{
		CurrentWord: r.wordSource(),
		DrawerID:    r.Players[0].ID,
	}
	return []Event{broadcast("game-started", gin.H{
		"room":     r.snapshot(),
		"word":     r.Scribble.CurrentWord,
		"round":    r.Round,
		"timeLeft": r.TimeLeft,
	})}
}

func (scribbleEngine) nextRound(r *Room) []Event {
	// Rotation advances from the former drawer's seat even when that player
	// has already left the room.
	nextIdx := 0
	if idx := r.playerIndex(r.Scribble.DrawerID); idx >= 0 {
		nextIdx = (idx + 1) % len(r.Players)
	}
	r.Scribble = &ScribbleState{
		CurrentWord: r.wordSource(),
		DrawerID:    r.Players[nextIdx].ID,
	}
	return []Event{broadcast("next-round", gin.H{
		"round":    r.Round,
		"word":     r.Scribble.CurrentWord,
		"drawerId": r.Scribble.DrawerID,
		"timeLeft": r.TimeLeft,
	})}
}

// RelayDraw fans a stroke point out to every room member except the sender.
// The server keeps no canvas state and does not verify the sender is the
// drawer (known trust gap, acceptable for a casual game).
func (reg *Registry) RelayDraw(code, connID string, point interface{}) {
	r, ok := reg.lookup(code)
	if !ok {
		return
	}
	reg.bc.ToRoomExcept(r.Code, connID, "draw", point)
}

// Guess checks a chat guess against the current word. Every guess is echoed
// to the room as a chat message annotated with correctness; a correct guess
// scores timeLeft*10 and advances the round.
func (reg *Registry) Guess(code, connID, text string) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		p, ok := r.player(connID)
		if !ok {
			return ErrRoomNotFound
		}

		correct := r.Started && r.Scribble != nil &&
			strings.EqualFold(strings.TrimSpace(text), r.Scribble.CurrentWord)

		events := []Event{broadcast("new-message", gin.H{
			"id":         uuid.NewString(),
			"playerId":   p.ID,
			"playerName": p.Name,
			"message":    text,
			"isCorrect":  correct,
			"timestamp":  time.Now().UnixMilli(),
		})}

		if correct {
			points := r.TimeLeft * game_constants.SCRIBBLE_POINTS_PER_SECOND
			p.Score += points
			events = append(events, broadcast("correct-guess", gin.H{
				"playerId":   p.ID,
				"playerName": p.Name,
				"score":      points,
				"word":       r.Scribble.CurrentWord,
			}))
			log.Printf("[GUESS] %s guessed the word in room %s (+%d)", p.Name, r.Code, points)
		}

		reg.emit(r.Code, events)
		if correct {
			expectRound := r.Round
			reg.advanceRound(r)
			if r.Started && r.Round != expectRound {
				reg.startRoundTicker(r.Code, r.Round)
			}
		}
		ack = gin.H{"isCorrect": correct}
		return nil
	})
	return ack, err
}

// scribbleTimeout ends the round with no scorer when the countdown expires.
// Called by the round ticker with the room lock held.
func (reg *Registry) scribbleTimeout(r *Room) {
	if r.Scribble == nil {
		return
	}
	log.Printf("[TIMEOUT] Round %d timed out in room %s", r.Round, r.Code)
	reg.advanceRound(r)
	if r.Started {
		reg.startRoundTicker(r.Code, r.Round)
	}
}
