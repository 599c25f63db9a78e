package game

import (
	"log"
	"math/rand"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/utils"
)

// engine is the per-variant rule set. start initializes round 1 state and
// returns the variant-specific round-start events; nextRound replaces the
// round state after Round has been advanced and announces the new round.
type engine interface {
	start(r *Room) []Event
	nextRound(r *Room) []Event
}

var engines = map[GameType]engine{
	GameScribble:  scribbleEngine{},
	GameHangman:   hangmanEngine{},
	GameWordchain: wordchainEngine{},
	GameTrivia:    triviaEngine{},
	GameCodenames: codenamesEngine{},
}

// Registry owns the room-code -> room table. The outer RW mutex guards only
// the map; each room is serialized by its own mutex so unrelated rooms never
// contend.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	// playerRooms maps a connection id to the code of the room it is in,
	// the server-side equivalent of socket.data.roomId.
	playerRooms map[string]string
	bc          Broadcaster
}

func NewRegistry(bc Broadcaster) *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		playerRooms: make(map[string]string),
		bc:          bc,
	}
}

// emit delivers engine events through the Broadcaster. Called with the room
// lock held so per-room emission order matches mutation order.
func (reg *Registry) emit(code string, events []Event) {
	for _, ev := range events {
		switch ev.Scope {
		case ScopePlayer:
			reg.bc.ToPlayer(ev.PlayerID, ev.Name, ev.Payload)
		default:
			reg.bc.ToRoom(code, ev.Name, ev.Payload)
		}
	}
}

func (reg *Registry) generateCode() string {
	b := make([]byte, game_constants.ROOM_CODE_LENGTH)
	for i := range b {
		b[i] = game_constants.ROOM_CODE_ALPHABET[rand.Intn(len(game_constants.ROOM_CODE_ALPHABET))]
	}
	return string(b)
}

// CreateRoom registers a new room with a fresh code and the creator as host
// and sole member. Collisions are rare but handled by regenerating.
func (reg *Registry) CreateRoom(hostID, playerName, roomName string, gt GameType, settings Settings) (*Room, error) {
	if !ValidGameType(gt) {
		gt = GameScribble
	}
	if settings.TotalRounds <= 0 {
		settings.TotalRounds = game_constants.DEFAULT_TOTAL_ROUNDS
	}
	if settings.RoundTime <= 0 {
		settings.RoundTime = game_constants.DEFAULT_ROUND_TIME
	}
	if settings.Category == "" {
		settings.Category = "animals"
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	code := reg.generateCode()
	for _, taken := reg.rooms[code]; taken; _, taken = reg.rooms[code] {
		code = reg.generateCode()
	}

	r := &Room{
		Code:        code,
		Name:        roomName,
		GameType:    gt,
		HostID:      hostID,
		Players:     []*Player{{ID: hostID, Name: playerName}},
		TotalRounds: settings.TotalRounds,
		RoundTime:   settings.RoundTime,
		Settings:    settings,
	}
	reg.rooms[code] = r
	reg.playerRooms[hostID] = code

	log.Printf("[CREATE] Room %s (%s) created by %s", code, gt, playerName)
	return r, nil
}

func (reg *Registry) lookup(code string) (*Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.rooms[utils.NormalizeRoomCode(code)]
	return r, ok
}

// withRoom resolves a code and runs fn with the room lock held. Unknown
// rooms return ErrRoomNotFound without running fn.
func (reg *Registry) withRoom(code string, fn func(r *Room) error) error {
	r, ok := reg.lookup(code)
	if !ok {
		return ErrRoomNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r)
}

// RoomSnapshot returns the client-facing view of a room, for the REST
// surface and for join acks.
func (reg *Registry) RoomSnapshot(code string) (gin.H, error) {
	var snap gin.H
	err := reg.withRoom(code, func(r *Room) error {
		snap = r.snapshot()
		return nil
	})
	return snap, err
}

// RoomCount reports how many rooms are live.
func (reg *Registry) RoomCount() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

// RoomSummaries lists every active room for the lobby listing endpoint.
func (reg *Registry) RoomSummaries() []gin.H {
	reg.mu.RLock()
	rooms := make([]*Room, 0, len(reg.rooms))
	for _, r := range reg.rooms {
		rooms = append(rooms, r)
	}
	reg.mu.RUnlock()

	out := make([]gin.H, 0, len(rooms))
	for _, r := range rooms {
		r.mu.Lock()
		out = append(out, gin.H{
			"id":          r.Code,
			"name":        r.Name,
			"gameType":    string(r.GameType),
			"playerCount": len(r.Players),
			"gameStarted": r.Started,
		})
		r.mu.Unlock()
	}
	return out
}

// Join appends a player to the room in arrival order. Joining a room the
// connection is already in succeeds without duplicating. Mid-game joins are
// admitted with score 0 when the room allows them. onAdmit, when non-nil,
// runs on admission before the join is announced, so the transport can add
// the socket to the room's group in time to receive its own announcement.
func (reg *Registry) Join(code, connID, playerName string, onAdmit func(code string)) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if _, ok := r.player(connID); ok {
			if onAdmit != nil {
				onAdmit(r.Code)
			}
			ack = gin.H{"room": r.snapshot(), "playerId": connID}
			return nil
		}
		if r.Started && !r.Settings.AllowMidGameJoin {
			return ErrGameAlreadyStarted
		}
		r.Players = append(r.Players, &Player{ID: connID, Name: playerName})

		reg.mu.Lock()
		reg.playerRooms[connID] = r.Code
		reg.mu.Unlock()

		if onAdmit != nil {
			onAdmit(r.Code)
		}
		reg.emit(r.Code, []Event{broadcast("player-joined", gin.H{
			"players":    r.playersPayload(),
			"playerId":   connID,
			"playerName": playerName,
		})})
		ack = gin.H{"room": r.snapshot(), "playerId": connID}
		log.Printf("[JOIN] %s joined room %s", playerName, r.Code)
		return nil
	})
	return ack, err
}

// RoomOf reports which room a connection currently belongs to.
func (reg *Registry) RoomOf(connID string) (string, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	code, ok := reg.playerRooms[connID]
	return code, ok
}

// Leave removes the connection's player from its room, migrating host and
// turn-dependent roles, and deletes the room when it empties. Safe to call
// twice for the same connection (disconnect followed by explicit leave).
func (reg *Registry) Leave(connID string) {
	code, ok := reg.RoomOf(connID)
	if !ok {
		return
	}

	reg.mu.Lock()
	delete(reg.playerRooms, connID)
	reg.mu.Unlock()

	_ = reg.withRoom(code, func(r *Room) error {
		idx := r.playerIndex(connID)
		if idx < 0 {
			return nil
		}
		leaving := r.Players[idx]
		wasHost := r.HostID == connID
		r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

		if len(r.Players) == 0 {
			reg.mu.Lock()
			delete(reg.rooms, r.Code)
			reg.mu.Unlock()
			log.Printf("[LEAVE] Room %s deleted", r.Code)
			return nil
		}

		events := []Event{}
		if wasHost {
			r.HostID = r.Players[0].ID
			events = append(events, broadcast("new-host", gin.H{"hostId": r.HostID}))
		}
		events = append(events, reg.reassignRoles(r, leaving, idx)...)
		events = append(events, broadcast("player-left", gin.H{
			"playerId":   connID,
			"playerName": leaving.Name,
			"players":    r.playersPayload(),
		}))
		reg.emit(r.Code, events)

		// The departure may have completed participation for the open trivia
		// question; everyone left has answered, so reveal now instead of
		// waiting out the countdown.
		if r.Started && r.Trivia != nil && !r.Trivia.Revealed && reg.shouldReveal(r) {
			reg.revealAnswer(r)
		}
		log.Printf("[LEAVE] %s left room %s", leaving.Name, r.Code)
		return nil
	})
}

// reassignRoles hands the departing player's turn-dependent role to the next
// eligible member.
func (reg *Registry) reassignRoles(r *Room, leaving *Player, formerIdx int) []Event {
	if !r.Started {
		return nil
	}
	var events []Event
	switch {
	case r.Scribble != nil:
		if r.Scribble.DrawerID == leaving.ID {
			r.Scribble.DrawerID = r.Players[0].ID
		}
	case r.WordChain != nil:
		// Keep the turn pointing at the same seat; wrap when the tail left.
		if formerIdx < r.WordChain.TurnIndex {
			r.WordChain.TurnIndex--
		}
		if r.WordChain.TurnIndex >= len(r.Players) {
			r.WordChain.TurnIndex = 0
		}
	case r.Trivia != nil:
		// Drop the leaver's answer so participation counts only the players
		// still in the room.
		delete(r.Trivia.Answers, leaving.ID)
		r.Trivia.AnswerOrder = lo.Without(r.Trivia.AnswerOrder, leaving.ID)
	case r.Codenames != nil:
		cn := r.Codenames
		team, onTeam := cn.Teams[leaving.ID]
		delete(cn.Teams, leaving.ID)
		if onTeam && cn.Spymasters[team] == leaving.ID {
			delete(cn.Spymasters, team)
			for _, p := range r.Players {
				if cn.Teams[p.ID] == team {
					cn.Spymasters[team] = p.ID
					events = append(events, toPlayer(p.ID, "codenames-setup", gin.H{
						"cards":       cn.Board,
						"team":        team,
						"isSpymaster": true,
					}))
					break
				}
			}
		}
	}
	return events
}

// StartGame transitions the room into round 1. Host-only; scores reset so a
// finished room can be restarted with "Play Again".
func (reg *Registry) StartGame(code, requesterID string) error {
	return reg.withRoom(code, func(r *Room) error {
		if r.HostID != requesterID {
			return ErrNotHost
		}
		if len(r.Players) < game_constants.MIN_PLAYERS_TO_START {
			return ErrInsufficientPlayers
		}

		for _, p := range r.Players {
			p.Score = 0
		}
		r.Started = true
		r.Round = 1
		r.TimeLeft = r.RoundTime

		events := engines[r.GameType].start(r)
		reg.emit(r.Code, events)
		if r.GameType == GameScribble || r.GameType == GameTrivia {
			reg.startRoundTicker(r.Code, r.Round)
		}
		log.Printf("[START] Game started in room %s (%s)", r.Code, r.GameType)
		return nil
	})
}

// advanceRound moves a running room to the next round, or ends the game
// after the final round. Must be called with the room lock held; the events
// are emitted before it returns.
func (reg *Registry) advanceRound(r *Room) {
	if r.Round >= r.TotalRounds {
		reg.endGame(r)
		return
	}
	r.Round++
	r.TimeLeft = r.RoundTime
	reg.emit(r.Code, engines[r.GameType].nextRound(r))
}

// endGame stops the room and announces final standings. The winner is the
// highest score, earliest joiner on ties.
func (reg *Registry) endGame(r *Room) {
	r.Started = false
	r.Scribble = nil
	r.Hangman = nil
	r.WordChain = nil
	r.Trivia = nil
	r.Codenames = nil

	var winner gin.H
	if w := r.winner(); w != nil {
		winner = gin.H{"id": w.ID, "name": w.Name, "score": w.Score}
	}
	reg.emit(r.Code, []Event{broadcast("game-over", gin.H{
		"winner": winner,
		"scores": r.playersPayload(),
	})})
	log.Printf("[GAME-OVER] Room %s finished", r.Code)
}

// normalizeLetter uppercases a single-letter submission.
func normalizeLetter(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
