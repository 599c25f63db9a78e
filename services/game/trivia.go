package game

import (
	"log"

	"github.com/gin-gonic/gin"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/services/wordbank"
)

// triviaEngine: one multiple-choice question per round, one answer per
// player. The reveal fires once everyone answered, or once somebody is right
// and at least half the room (rounded up) has answered.
type triviaEngine struct{}

func newTriviaState() *TriviaState {
	return &TriviaState{
		Question: wordbank.PickQuestion(),
		Answers:  make(map[string]TriviaAnswer),
	}
}

func questionPayload(q wordbank.Question) gin.H {
	return gin.H{"q": q.Text, "options": q.Options, "answer": q.Answer}
}

func (triviaEngine) start(r *Room) []Event {
	r.Trivia = newTriviaState()
	r.TimeLeft = game_constants.TRIVIA_QUESTION_TIME
	return []Event{
		broadcast("game-started", gin.H{
			"room":  r.snapshot(),
			"round": r.Round,
		}),
		broadcast("trivia-start", gin.H{
			"question": questionPayload(r.Trivia.Question),
			"timeLeft": r.TimeLeft,
		}),
	}
}

func (triviaEngine) nextRound(r *Room) []Event {
	r.Trivia = newTriviaState()
	r.TimeLeft = game_constants.TRIVIA_QUESTION_TIME
	return []Event{broadcast("next-round", gin.H{
		"round":    r.Round,
		"question": questionPayload(r.Trivia.Question),
		"timeLeft": r.TimeLeft,
	})}
}

// SubmitAnswer records a player's answer letter. A second submission for the
// same question is rejected with ErrAlreadyAnswered and scores nothing.
func (reg *Registry) SubmitAnswer(code, connID, letter string) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if r.GameType != GameTrivia {
			return ErrWrongGameType
		}
		if !r.Started || r.Trivia == nil || r.Trivia.Revealed {
			return ErrGameNotStarted
		}
		p, ok := r.player(connID)
		if !ok {
			return ErrRoomNotFound
		}

		tv := r.Trivia
		if _, dup := tv.Answers[connID]; dup {
			return ErrAlreadyAnswered
		}

		l := normalizeLetter(letter)
		correct := l == tv.Question.Answer
		tv.Answers[connID] = TriviaAnswer{Letter: l, Correct: correct}
		tv.AnswerOrder = append(tv.AnswerOrder, connID)
		if correct {
			p.Score += game_constants.TRIVIA_CORRECT_POINTS
		}

		reg.emit(r.Code, []Event{broadcast("trivia-answer", gin.H{
			"playerId":      p.ID,
			"playerName":    p.Name,
			"answeredCount": len(tv.Answers),
			"playerCount":   len(r.Players),
		})})

		if reg.shouldReveal(r) {
			reg.revealAnswer(r)
		}
		ack = gin.H{"correct": correct}
		return nil
	})
	return ack, err
}

// shouldReveal implements the reveal trigger: full participation, or a
// correct answer plus at least half the players (rounded up).
func (reg *Registry) shouldReveal(r *Room) bool {
	tv := r.Trivia
	if len(tv.Answers) >= len(r.Players) {
		return true
	}
	anyCorrect := false
	for _, a := range tv.Answers {
		if a.Correct {
			anyCorrect = true
			break
		}
	}
	half := (len(r.Players) + 1) / 2
	return anyCorrect && len(tv.Answers) >= half
}

// revealAnswer broadcasts the correct letter and the first correct answerer,
// then schedules the deferred round advance. Room lock held.
func (reg *Registry) revealAnswer(r *Room) {
	tv := r.Trivia
	tv.Revealed = true

	var roundWinner gin.H
	for _, id := range tv.AnswerOrder {
		if tv.Answers[id].Correct {
			if p, ok := r.player(id); ok {
				roundWinner = gin.H{"id": p.ID, "name": p.Name}
			}
			break
		}
	}

	reg.emit(r.Code, []Event{
		broadcast("trivia-reveal", gin.H{
			"answer": tv.Question.Answer,
			"winner": roundWinner,
		}),
		broadcast("trivia-round-over", gin.H{
			"round":       r.Round,
			"totalRounds": r.TotalRounds,
			"scores":      r.playersPayload(),
		}),
	})
	log.Printf("[TRIVIA] Answer revealed in room %s (round %d)", r.Code, r.Round)
	reg.scheduleTriviaAdvance(r.Code, r.Round)
}

// triviaTimeout forces the reveal when the question countdown expires with
// answers still missing. Called by the round ticker with the room lock held.
func (reg *Registry) triviaTimeout(r *Room) {
	if r.Trivia == nil || r.Trivia.Revealed {
		return
	}
	log.Printf("[TRIVIA] Question timed out in room %s (round %d)", r.Code, r.Round)
	reg.revealAnswer(r)
}

// triviaAdvance runs after the reveal delay: next question, or the trivia
// variant of game over (the client listens for trivia-game-over, not the
// generic event). Room lock held.
func (reg *Registry) triviaAdvance(r *Room) {
	if r.Round >= r.TotalRounds {
		r.Started = false
		r.Trivia = nil
		var winner gin.H
		if w := r.winner(); w != nil {
			winner = gin.H{"id": w.ID, "name": w.Name, "score": w.Score}
		}
		reg.emit(r.Code, []Event{broadcast("trivia-game-over", gin.H{
			"winner": winner,
			"scores": r.playersPayload(),
		})})
		log.Printf("[GAME-OVER] Trivia finished in room %s", r.Code)
		return
	}
	r.Round++
	r.TimeLeft = r.RoundTime
	reg.emit(r.Code, engines[GameTrivia].nextRound(r))
	reg.startRoundTicker(r.Code, r.Round)
}
