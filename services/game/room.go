package game

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/services/wordbank"
)

// GameType tags the variant a room was created with.
type GameType string

const (
	GameScribble  GameType = "scribble"
	GameHangman   GameType = "hangman"
	GameWordchain GameType = "wordchain"
	GameTrivia    GameType = "trivia"
	GameCodenames GameType = "codenames"
)

// ValidGameType reports whether gt names a known variant.
func ValidGameType(gt GameType) bool {
	switch gt {
	case GameScribble, GameHangman, GameWordchain, GameTrivia, GameCodenames:
		return true
	}
	return false
}

// Player is one room member. The ID is the ephemeral socket connection id;
// Score is reset when a new game starts and only grows while one is running.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Settings are the host-chosen room options.
type Settings struct {
	TotalRounds int
	RoundTime   int // seconds per round
	Category    string
	CustomWords []string
	// AllowMidGameJoin admits players after the game started (they join with
	// score 0). The original behaviour, kept as policy rather than hardcoded.
	AllowMidGameJoin bool
}

// DefaultSettings mirrors the original room defaults.
func DefaultSettings() Settings {
	return Settings{
		TotalRounds:      game_constants.DEFAULT_TOTAL_ROUNDS,
		RoundTime:        game_constants.DEFAULT_ROUND_TIME,
		Category:         "animals",
		AllowMidGameJoin: true,
	}
}

// Variant round states. Each is replaced wholesale on round transitions so
// nothing stale carries across rounds.

type ScribbleState struct {
	CurrentWord string
	DrawerID    string
}

type HangmanState struct {
	CurrentWord    string
	GuessedLetters []string
	WrongGuesses   int
}

type WordChainState struct {
	Chain      []string
	LastLetter string
	TurnIndex  int
}

type TriviaAnswer struct {
	Letter  string
	Correct bool
}

type TriviaState struct {
	Question wordbank.Question
	// Answers holds at most one entry per player per question.
	Answers map[string]TriviaAnswer
	// AnswerOrder preserves submission order for the "first correct" winner.
	AnswerOrder []string
	Revealed    bool
}

type CodenamesCard struct {
	Word     string `json:"word"`
	Team     string `json:"type"` // red | blue | neutral | assassin
	Revealed bool   `json:"revealed"`
}

type Clue struct {
	Word   string `json:"word"`
	Number int    `json:"number"`
}

type CodenamesState struct {
	Board       []CodenamesCard
	TurnTeam    string
	GuessesLeft int
	ActiveClue  *Clue
	Spymasters  map[string]string // team -> player id
	Teams       map[string]string // player id -> team
}

// Room is one active game session. All mutable fields are guarded by mu;
// the registry locks it around every action so no two actions on the same
// room ever interleave.
type Room struct {
	mu sync.Mutex

	Code        string
	Name        string
	GameType    GameType
	HostID      string
	Players     []*Player // join order, significant for turn rotation
	Started     bool
	Round       int // 0 while not started, 1-based while running
	TotalRounds int
	RoundTime   int
	TimeLeft    int
	Settings    Settings

	Scribble  *ScribbleState
	Hangman   *HangmanState
	WordChain *WordChainState
	Trivia    *TriviaState
	Codenames *CodenamesState
}

func (r *Room) player(id string) (*Player, bool) {
	return lo.Find(r.Players, func(p *Player) bool { return p.ID == id })
}

func (r *Room) playerIndex(id string) int {
	_, idx, _ := lo.FindIndexOf(r.Players, func(p *Player) bool { return p.ID == id })
	return idx
}

func (r *Room) addScore(playerID string, points int) {
	if p, ok := r.player(playerID); ok {
		p.Score += points
	}
}

// winner picks the player with the strictly highest score; ties resolve to
// the earliest joiner.
func (r *Room) winner() *Player {
	var best *Player
	for _, p := range r.Players {
		if best == nil || p.Score > best.Score {
			best = p
		}
	}
	return best
}

func (r *Room) playersPayload() []gin.H {
	return lo.Map(r.Players, func(p *Player, _ int) gin.H {
		return gin.H{"id": p.ID, "name": p.Name, "score": p.Score}
	})
}

// snapshot is the room object sent to clients on create/join/start.
func (r *Room) snapshot() gin.H {
	snap := gin.H{
		"id":          r.Code,
		"name":        r.Name,
		"gameType":    string(r.GameType),
		"hostId":      r.HostID,
		"players":     r.playersPayload(),
		"gameStarted": r.Started,
		"round":       r.Round,
		"totalRounds": r.TotalRounds,
		"roundTime":   r.RoundTime,
		"timeLeft":    r.TimeLeft,
		"category":    r.Settings.Category,
	}
	if r.Scribble != nil {
		snap["isDrawer"] = r.Scribble.DrawerID
	}
	return snap
}

// wordSource is the active scribble word list: the room's custom list when
// one was provided, else the shared catalog.
func (r *Room) wordSource() string {
	if len(r.Settings.CustomWords) > 0 {
		return strings.ToUpper(lo.Sample(r.Settings.CustomWords))
	}
	return wordbank.PickWord(string(r.GameType), r.Settings.Category)
}
