package game

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
)

// newCodenamesGame starts a four-player game: p1 red spymaster, p2 blue
// spymaster, p3 red operative, p4 blue operative (teams alternate by join
// order). Red moves first.
func newCodenamesGame(t *testing.T) (*Registry, *fakeBroadcaster, *Room) {
	t.Helper()
	reg, fake, r := newTestRoom(t, GameCodenames, Settings{}, "p2", "p3", "p4")
	assert.NoError(t, reg.StartGame(r.Code, "p1"))
	return reg, fake, r
}

// cardIndexes returns the board positions holding cards of the given team.
func cardIndexes(r *Room, team string) []int {
	var out []int
	readRoom(r, func() {
		for i, c := range r.Codenames.Board {
			if c.Team == team {
				out = append(out, i)
			}
		}
	})
	return out
}

func TestCodenamesSetup(t *testing.T) {
	_, fake, r := newCodenamesGame(t)

	readRoom(r, func() {
		cn := r.Codenames
		assert.Len(t, cn.Board, game_constants.CODENAMES_BOARD_SIZE)
		assert.Equal(t, TeamRed, cn.Teams["p1"])
		assert.Equal(t, TeamBlue, cn.Teams["p2"])
		assert.Equal(t, TeamRed, cn.Teams["p3"])
		assert.Equal(t, TeamBlue, cn.Teams["p4"])
		assert.Equal(t, "p1", cn.Spymasters[TeamRed])
		assert.Equal(t, "p2", cn.Spymasters[TeamBlue])
		assert.Equal(t, TeamRed, cn.TurnTeam)
	})

	// Card distribution: 9 red, 8 blue, 7 neutral, 1 assassin.
	assert.Len(t, cardIndexes(r, TeamRed), game_constants.CODENAMES_STARTING_CARDS)
	assert.Len(t, cardIndexes(r, TeamBlue), game_constants.CODENAMES_SECOND_CARDS)
	assert.Len(t, cardIndexes(r, TeamNeutral), game_constants.CODENAMES_NEUTRAL_CARDS)
	assert.Len(t, cardIndexes(r, TeamAssassin), 1)

	// Every player got a private setup with their role.
	setups := fake.byName("codenames-setup")
	assert.Len(t, setups, 4)
	for _, ev := range setups {
		payload := ev.Payload.(gin.H)
		if ev.Player == "p3" {
			assert.Equal(t, TeamRed, payload["team"])
			assert.Equal(t, false, payload["isSpymaster"])
		}
		if ev.Player == "p1" {
			assert.Equal(t, true, payload["isSpymaster"])
		}
	}

	turn := fake.last(t, "codenames-turn")
	assert.Equal(t, TeamRed, turn["team"])
	assert.Equal(t, 0, turn["guessesLeft"])
	assert.Nil(t, turn["clue"])
}

func TestCodenamesClueGuards(t *testing.T) {
	reg, _, r := newCodenamesGame(t)

	// Operatives cannot give clues.
	_, err := reg.GiveClue(r.Code, "p3", "OCEAN", 2)
	assert.ErrorIs(t, err, ErrNotSpymaster)

	// The blue spymaster is off-turn.
	_, err = reg.GiveClue(r.Code, "p2", "OCEAN", 2)
	assert.ErrorIs(t, err, ErrNotYourTeam)

	// Guessing before any clue is rejected.
	_, err = reg.GuessCard(r.Code, "p3", 0)
	assert.ErrorIs(t, err, ErrNoActiveClue)

	_, err = reg.GiveClue(r.Code, "p1", "OCEAN", 2)
	assert.NoError(t, err)

	// Only one pending clue at a time.
	_, err = reg.GiveClue(r.Code, "p1", "RIVER", 1)
	assert.ErrorIs(t, err, ErrClueActive)
}

func TestCodenamesGuessFlow(t *testing.T) {
	reg, fake, r := newCodenamesGame(t)
	reds := cardIndexes(r, TeamRed)
	neutrals := cardIndexes(r, TeamNeutral)
	fake.reset()

	// Clue for two cards grants the standard bonus guess.
	_, err := reg.GiveClue(r.Code, "p1", "ocean", 2)
	assert.NoError(t, err)
	turn := fake.last(t, "codenames-turn")
	assert.Equal(t, 3, turn["guessesLeft"])
	clue := turn["clue"].(*Clue)
	assert.Equal(t, "OCEAN", clue.Word)

	// The spymaster cannot guess their own clue.
	_, err = reg.GuessCard(r.Code, "p1", reds[0])
	assert.ErrorIs(t, err, ErrSpymasterCannotGuess)

	// Two own-team cards keep the turn alive, counting down.
	ack, err := reg.GuessCard(r.Code, "p3", reds[0])
	assert.NoError(t, err)
	assert.Equal(t, TeamRed, ack["type"])
	revealed := fake.last(t, "codenames-card-revealed")
	assert.Equal(t, reds[0], revealed["index"])
	assert.Equal(t, TeamRed, revealed["type"])
	assert.Equal(t, 2, fake.last(t, "codenames-correct-guess")["guessesLeft"])

	// A revealed card cannot be guessed again.
	_, err = reg.GuessCard(r.Code, "p3", reds[0])
	assert.ErrorIs(t, err, ErrCardRevealed)

	_, err = reg.GuessCard(r.Code, "p3", reds[1])
	assert.NoError(t, err)
	assert.Equal(t, 1, fake.last(t, "codenames-correct-guess")["guessesLeft"])

	// A neutral card ends the turn: blue takes over with no clue.
	ack, err = reg.GuessCard(r.Code, "p3", neutrals[0])
	assert.NoError(t, err)
	assert.Equal(t, TeamNeutral, ack["type"])
	turn = fake.last(t, "codenames-turn")
	assert.Equal(t, TeamBlue, turn["team"])
	assert.Equal(t, 0, turn["guessesLeft"])
	assert.Nil(t, turn["clue"])

	// Red is now off-turn and blue has no clue yet.
	_, err = reg.GuessCard(r.Code, "p3", reds[2])
	assert.ErrorIs(t, err, ErrNotYourTeam)
	_, err = reg.GuessCard(r.Code, "p4", reds[2])
	assert.ErrorIs(t, err, ErrNoActiveClue)
}

func TestCodenamesGuessesExhaustedPassesTurn(t *testing.T) {
	reg, fake, r := newCodenamesGame(t)
	reds := cardIndexes(r, TeamRed)

	_, err := reg.GiveClue(r.Code, "p1", "TWO", 1)
	assert.NoError(t, err)
	fake.reset()

	// 1+1 guesses; the second success still spends the last guess.
	_, err = reg.GuessCard(r.Code, "p3", reds[0])
	assert.NoError(t, err)
	_, err = reg.GuessCard(r.Code, "p3", reds[1])
	assert.NoError(t, err)

	turn := fake.last(t, "codenames-turn")
	assert.Equal(t, TeamBlue, turn["team"])
}

func TestCodenamesAssassinEndsGame(t *testing.T) {
	reg, fake, r := newCodenamesGame(t)
	assassin := cardIndexes(r, TeamAssassin)[0]

	_, err := reg.GiveClue(r.Code, "p1", "DOOM", 1)
	assert.NoError(t, err)
	fake.reset()

	ack, err := reg.GuessCard(r.Code, "p3", assassin)
	assert.NoError(t, err)
	assert.Equal(t, TeamAssassin, ack["type"])

	over := fake.last(t, "codenames-game-over")
	assert.Equal(t, TeamBlue, over["winner"])
	assert.Equal(t, "RED team hit the assassin", over["reason"])
	readRoom(r, func() {
		assert.False(t, r.Started)
		assert.Nil(t, r.Codenames)
	})
}

func TestCodenamesRevealingLastTeamCardWins(t *testing.T) {
	reg, fake, r := newCodenamesGame(t)
	reds := cardIndexes(r, TeamRed)

	// Pre-reveal all but one red card, then guess the last one.
	readRoom(r, func() {
		for _, i := range reds[:len(reds)-1] {
			r.Codenames.Board[i].Revealed = true
		}
	})
	_, err := reg.GiveClue(r.Code, "p1", "REST", 1)
	assert.NoError(t, err)
	fake.reset()

	_, err = reg.GuessCard(r.Code, "p3", reds[len(reds)-1])
	assert.NoError(t, err)

	over := fake.last(t, "codenames-game-over")
	assert.Equal(t, TeamRed, over["winner"])
	assert.Equal(t, "All red cards revealed", over["reason"])
}

func TestCodenamesClueNumberClampedToOne(t *testing.T) {
	reg, fake, r := newCodenamesGame(t)

	_, err := reg.GiveClue(r.Code, "p1", "ZERO", 0)
	assert.NoError(t, err)

	turn := fake.last(t, "codenames-turn")
	assert.Equal(t, 2, turn["guessesLeft"])
	readRoom(r, func() {
		assert.Equal(t, 1, r.Codenames.ActiveClue.Number)
	})
}
