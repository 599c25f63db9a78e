package game

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
)

// wrongAnswer returns an option letter other than the correct one.
func wrongAnswer(correct string) string {
	if correct == "A" {
		return "B"
	}
	return "A"
}

func TestTriviaCorrectAnswerScoresAndReveals(t *testing.T) {
	reg, fake, r := newTestRoom(t, GameTrivia, Settings{TotalRounds: 2}, "p2")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })
	started := fake.last(t, "trivia-start")
	assert.NotNil(t, started["question"])
	fake.reset()

	// One correct answer out of two players meets the half-the-room trigger.
	ack, err := reg.SubmitAnswer(r.Code, "p2", answer)
	assert.NoError(t, err)
	assert.Equal(t, true, ack["correct"])

	counted := fake.last(t, "trivia-answer")
	assert.Equal(t, 1, counted["answeredCount"])
	assert.Equal(t, 2, counted["playerCount"])

	reveal := fake.last(t, "trivia-reveal")
	assert.Equal(t, answer, reveal["answer"])
	winner := reveal["winner"].(gin.H)
	assert.Equal(t, "p2", winner["id"])
	assert.True(t, fake.has("trivia-round-over"))
	readRoom(r, func() {
		assert.Equal(t, game_constants.TRIVIA_CORRECT_POINTS, r.Players[1].Score)
		assert.True(t, r.Trivia.Revealed)
	})
}

func TestTriviaAllWrongRevealsOnFullParticipation(t *testing.T) {
	reg, fake, r := newTestRoom(t, GameTrivia, Settings{TotalRounds: 2}, "p2")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })
	fake.reset()

	ack, err := reg.SubmitAnswer(r.Code, "p1", wrongAnswer(answer))
	assert.NoError(t, err)
	assert.Equal(t, false, ack["correct"])
	// One wrong answer alone does not reveal.
	assert.False(t, fake.has("trivia-reveal"))

	_, err = reg.SubmitAnswer(r.Code, "p2", wrongAnswer(answer))
	assert.NoError(t, err)

	// Everyone answered, nobody was right.
	reveal := fake.last(t, "trivia-reveal")
	assert.Nil(t, reveal["winner"])
	readRoom(r, func() {
		assert.Equal(t, 0, r.Players[0].Score)
		assert.Equal(t, 0, r.Players[1].Score)
	})
}

func TestTriviaDuplicateAnswerRejected(t *testing.T) {
	reg, fake, r := newTestRoom(t, GameTrivia, Settings{}, "p2", "p3")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })

	_, err := reg.SubmitAnswer(r.Code, "p1", wrongAnswer(answer))
	assert.NoError(t, err)
	fake.reset()

	// Switching to the right answer on a retry does not help.
	_, err = reg.SubmitAnswer(r.Code, "p1", answer)
	assert.ErrorIs(t, err, ErrAlreadyAnswered)
	assert.False(t, fake.has("trivia-answer"))
	readRoom(r, func() {
		assert.Equal(t, 0, r.Players[0].Score)
		assert.Len(t, r.Trivia.Answers, 1)
	})
}

func TestTriviaRevealsWhenLastUnansweredPlayerLeaves(t *testing.T) {
	reg, fake, r := newTestRoom(t, GameTrivia, Settings{TotalRounds: 2}, "p2", "p3")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })
	fake.reset()

	// Two wrong answers out of three players: no trigger yet.
	_, err := reg.SubmitAnswer(r.Code, "p1", wrongAnswer(answer))
	assert.NoError(t, err)
	_, err = reg.SubmitAnswer(r.Code, "p2", wrongAnswer(answer))
	assert.NoError(t, err)
	assert.False(t, fake.has("trivia-reveal"))

	// The only player still to answer leaves; everyone remaining has
	// answered, so the reveal fires without waiting for the countdown.
	reg.Leave("p3")

	reveal := fake.last(t, "trivia-reveal")
	assert.Nil(t, reveal["winner"])
	assert.True(t, fake.has("player-left"))
	readRoom(r, func() {
		assert.True(t, r.Trivia.Revealed)
		assert.Len(t, r.Players, 2)
	})
}

func TestTriviaAnsweredPlayerLeavingDoesNotReveal(t *testing.T) {
	reg, fake, r := newTestRoom(t, GameTrivia, Settings{TotalRounds: 2}, "p2", "p3")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })
	_, err := reg.SubmitAnswer(r.Code, "p1", wrongAnswer(answer))
	assert.NoError(t, err)
	fake.reset()

	// The leaver's answer goes with them; the two remaining players still
	// get their shot at the question.
	reg.Leave("p1")
	assert.False(t, fake.has("trivia-reveal"))
	readRoom(r, func() {
		assert.Empty(t, r.Trivia.Answers)
		assert.Empty(t, r.Trivia.AnswerOrder)
	})
}

func TestTriviaRevealClosesSubmissions(t *testing.T) {
	reg, _, r := newTestRoom(t, GameTrivia, Settings{TotalRounds: 2}, "p2", "p3")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))

	var answer string
	readRoom(r, func() { answer = r.Trivia.Question.Answer })

	// Two of three answering, one correctly, trips the reveal early.
	_, err := reg.SubmitAnswer(r.Code, "p1", answer)
	assert.NoError(t, err)
	_, err = reg.SubmitAnswer(r.Code, "p2", wrongAnswer(answer))
	assert.NoError(t, err)

	readRoom(r, func() { assert.True(t, r.Trivia.Revealed) })

	// The straggler is locked out until the next question.
	_, err = reg.SubmitAnswer(r.Code, "p3", answer)
	assert.ErrorIs(t, err, ErrGameNotStarted)
}
