package game

import "errors"

// Recoverable action errors. Every one of these is surfaced to the
// originating client only; they never tear down a room.
var (
	ErrRoomNotFound         = errors.New("Room not found")
	ErrNotHost              = errors.New("Only host can start the game")
	ErrInsufficientPlayers  = errors.New("Need at least 1 player")
	ErrGameNotStarted       = errors.New("Game has not started")
	ErrGameAlreadyStarted   = errors.New("Game already started")
	ErrNotYourTurn          = errors.New("Not your turn")
	ErrAlreadyGuessed       = errors.New("Already guessed")
	ErrAlreadyAnswered      = errors.New("Already answered")
	ErrWrongGameType        = errors.New("Wrong game type for this action")
	ErrNotSpymaster         = errors.New("Only the spymaster can give clues")
	ErrSpymasterCannotGuess = errors.New("Spymasters cannot guess")
	ErrNotYourTeam          = errors.New("Not your team's turn")
	ErrNoActiveClue         = errors.New("Wait for your spymaster's clue")
	ErrClueActive           = errors.New("A clue is already active")
	ErrCardRevealed         = errors.New("Card already revealed")
	ErrInvalidCard          = errors.New("Invalid card index")
)
