package game

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/services/wordbank"
)

// hangmanEngine: cooperative letter guessing, not turn-restricted. Six wrong
// guesses lose the round; completing the word awards the finishing guesser.
type hangmanEngine struct{}

func newHangmanState(category string) *HangmanState {
	return &HangmanState{
		CurrentWord:    wordbank.PickWord("hangman", category),
		GuessedLetters: []string{},
	}
}

func (hangmanEngine) start(r *Room) []Event {
	r.Hangman = newHangmanState(r.Settings.Category)
	return []Event{broadcast("game-started", gin.H{
		"room":  r.snapshot(),
		"word":  r.Hangman.CurrentWord,
		"round": r.Round,
	})}
}

func (hangmanEngine) nextRound(r *Room) []Event {
	r.Hangman = newHangmanState(r.Settings.Category)
	return []Event{broadcast("next-round", gin.H{
		"round": r.Round,
		"word":  r.Hangman.CurrentWord,
	})}
}

// GuessLetter applies one letter guess. Duplicate letters are rejected with
// ErrAlreadyGuessed and change nothing.
func (reg *Registry) GuessLetter(code, connID, letter string) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if r.GameType != GameHangman {
			return ErrWrongGameType
		}
		if !r.Started || r.Hangman == nil {
			return ErrGameNotStarted
		}
		p, ok := r.player(connID)
		if !ok {
			return ErrRoomNotFound
		}

		hm := r.Hangman
		l := normalizeLetter(letter)
		if lo.Contains(hm.GuessedLetters, l) {
			return ErrAlreadyGuessed
		}
		hm.GuessedLetters = append(hm.GuessedLetters, l)

		correct := strings.Contains(hm.CurrentWord, l)
		if !correct {
			hm.WrongGuesses++
		}

		events := []Event{broadcast("hangman-update", gin.H{
			"guessedLetters": hm.GuessedLetters,
			"wrongGuesses":   hm.WrongGuesses,
			"playerId":       p.ID,
			"playerName":     p.Name,
			"letter":         l,
			"isCorrect":      correct,
		})}

		roundOver := false
		if !correct && hm.WrongGuesses >= game_constants.MAX_WRONG_GUESSES {
			// The round ends on the guess that reaches the limit.
			roundOver = true
			events = append(events, broadcast("hangman-round-over", gin.H{
				"word":        hm.CurrentWord,
				"winner":      nil,
				"round":       r.Round,
				"totalRounds": r.TotalRounds,
			}))
			log.Printf("[HANGMAN] Round %d lost in room %s (word %s)", r.Round, r.Code, hm.CurrentWord)
		} else if correct && wordCovered(hm.CurrentWord, hm.GuessedLetters) {
			roundOver = true
			p.Score += game_constants.HANGMAN_WIN_POINTS
			events = append(events, broadcast("hangman-round-over", gin.H{
				"word":        hm.CurrentWord,
				"winner":      gin.H{"id": p.ID, "name": p.Name, "score": game_constants.HANGMAN_WIN_POINTS},
				"round":       r.Round,
				"totalRounds": r.TotalRounds,
			}))
			log.Printf("[HANGMAN] %s completed %s in room %s", p.Name, hm.CurrentWord, r.Code)
		}

		reg.emit(r.Code, events)
		if roundOver {
			reg.advanceRound(r)
		}
		ack = gin.H{"isCorrect": correct}
		return nil
	})
	return ack, err
}

// wordCovered reports whether every letter of word has been guessed.
func wordCovered(word string, guessed []string) bool {
	return lo.EveryBy(strings.Split(word, ""), func(l string) bool {
		return lo.Contains(guessed, l)
	})
}
