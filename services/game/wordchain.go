package game

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/services/wordbank"
)

// wordchainEngine: strictly turn-ordered word submissions, each word starting
// with the last letter of the previous one, no repeats within a round. The
// round has no engine-enforced end; it runs until the host ends the game.
type wordchainEngine struct{}

func newWordChainState() *WordChainState {
	seed := wordbank.PickWord("wordchain", "")
	return &WordChainState{
		Chain:      []string{seed},
		LastLetter: lastLetter(seed),
	}
}

func (wordchainEngine) start(r *Room) []Event {
	r.WordChain = newWordChainState()
	return []Event{
		broadcast("game-started", gin.H{
			"room":  r.snapshot(),
			"word":  r.WordChain.Chain[0],
			"round": r.Round,
		}),
		broadcast("wordchain-start", gin.H{
			"word":      r.WordChain.Chain[0],
			"startedBy": r.HostID,
		}),
	}
}

func (wordchainEngine) nextRound(r *Room) []Event {
	r.WordChain = newWordChainState()
	return []Event{broadcast("next-round", gin.H{
		"round": r.Round,
		"word":  r.WordChain.Chain[0],
	})}
}

// SubmitWord validates and appends a chain word for the player whose turn it
// is. Rejections leave the chain and the turn untouched so the same player
// retries.
func (reg *Registry) SubmitWord(code, connID, word string) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if r.GameType != GameWordchain {
			return ErrWrongGameType
		}
		if !r.Started || r.WordChain == nil {
			return ErrGameNotStarted
		}
		wc := r.WordChain
		current := r.Players[wc.TurnIndex]
		if current.ID != connID {
			return ErrNotYourTurn
		}

		w := strings.ToUpper(strings.TrimSpace(word))
		if wc.LastLetter != "" && !strings.HasPrefix(w, wc.LastLetter) {
			return fmt.Errorf("Word must start with %q", wc.LastLetter)
		}
		if lo.Contains(wc.Chain, w) {
			return errors.New("Word already used!")
		}

		wc.Chain = append(wc.Chain, w)
		wc.LastLetter = lastLetter(w)
		current.Score += game_constants.WORDCHAIN_WORD_POINTS
		wc.TurnIndex = (wc.TurnIndex + 1) % len(r.Players)

		reg.emit(r.Code, []Event{broadcast("wordchain-word", gin.H{
			"word":       w,
			"playerId":   current.ID,
			"playerName": current.Name,
			"isValid":    true,
			"newChain":   wc.Chain,
			"nextTurn":   r.Players[wc.TurnIndex].ID,
		})})
		log.Printf("[WORDCHAIN] %s played %s in room %s", current.Name, w, r.Code)
		ack = gin.H{}
		return nil
	})
	return ack, err
}

func lastLetter(w string) string {
	if w == "" {
		return ""
	}
	return w[len(w)-1:]
}
