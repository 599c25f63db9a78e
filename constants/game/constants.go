package game_constants

import "time"

// Room defaults
const DEFAULT_TOTAL_ROUNDS = 3
const DEFAULT_ROUND_TIME = 80 // seconds
const MIN_PLAYERS_TO_START = 1
const ROOM_CODE_LENGTH = 6
const ROOM_CODE_ALPHABET = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Scoring
const SCRIBBLE_POINTS_PER_SECOND = 10 // correct guess earns timeLeft * 10
const HANGMAN_WIN_POINTS = 100
const WORDCHAIN_WORD_POINTS = 10
const TRIVIA_CORRECT_POINTS = 100

// Hangman
const MAX_WRONG_GUESSES = 6

// Trivia questions run a fixed countdown regardless of the room's round time.
const TRIVIA_QUESTION_TIME = 30 // seconds

// Timeouts
const (
	TRIVIA_REVEAL_DELAY = 3 * time.Second
	TIMER_TICK          = 1 * time.Second
)

// Codenames board distribution: 9 cards for the starting team, 8 for the
// other, 7 neutral and 1 assassin.
const (
	CODENAMES_BOARD_SIZE     = 25
	CODENAMES_STARTING_CARDS = 9
	CODENAMES_SECOND_CARDS   = 8
	CODENAMES_NEUTRAL_CARDS  = 7
)
