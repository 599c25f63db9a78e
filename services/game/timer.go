package game

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
)

// Round timers are plain goroutines that re-validate the room on every tick
// instead of being cancelled explicitly: a deleted room, a stopped game or a
// round that moved on all strand the old timer, which then exits without
// touching anything.

// startRoundTicker drives the per-second countdown for the given round of a
// scribble or trivia room. When the countdown reaches zero the variant's
// timeout path runs (scribble: advance with no scorer; trivia: force the
// reveal).
func (reg *Registry) startRoundTicker(code string, expectedRound int) {
	go func() {
		ticker := time.NewTicker(game_constants.TIMER_TICK)
		defer ticker.Stop()
		for range ticker.C {
			if !reg.tick(code, expectedRound) {
				return
			}
		}
	}()
}

// tick decrements the countdown once. Returns false when the timer is stale
// and the goroutine should die.
func (reg *Registry) tick(code string, expectedRound int) bool {
	r, ok := reg.lookup(code)
	if !ok {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Started || r.Round != expectedRound {
		// A correct guess or a restart already moved the room on.
		return false
	}
	if r.GameType == GameTrivia && (r.Trivia == nil || r.Trivia.Revealed) {
		return false
	}

	r.TimeLeft--
	if r.TimeLeft < 0 {
		r.TimeLeft = 0
	}
	reg.emit(r.Code, []Event{broadcast("timer-update", gin.H{
		"timeLeft": r.TimeLeft,
		"round":    r.Round,
	})})

	if r.TimeLeft > 0 {
		return true
	}
	switch r.GameType {
	case GameScribble:
		reg.scribbleTimeout(r)
	case GameTrivia:
		reg.triviaTimeout(r)
	}
	return false
}

// scheduleTriviaAdvance waits the reveal delay and then advances a trivia
// room, unless the room disappeared or changed round while the delay ran.
func (reg *Registry) scheduleTriviaAdvance(code string, expectedRound int) {
	go func() {
		time.Sleep(game_constants.TRIVIA_REVEAL_DELAY)
		reg.advanceTriviaIfCurrent(code, expectedRound)
	}()
}

// advanceTriviaIfCurrent moves a revealed trivia room past the given round.
// Anything that already moved the room on strands the delayed advance.
func (reg *Registry) advanceTriviaIfCurrent(code string, expectedRound int) {
	r, ok := reg.lookup(code)
	if !ok {
		log.Printf("[TRIVIA-ADVANCE] Room %s gone, ignoring stale timer", code)
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.Started || r.Round != expectedRound || r.Trivia == nil || !r.Trivia.Revealed {
		log.Printf("[TRIVIA-ADVANCE] Stale advance for room %s (round %d), skipping",
			code, expectedRound)
		return
	}
	reg.triviaAdvance(r)
}
