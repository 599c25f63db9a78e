package game

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	game_constants "github.com/M-Destiny/mini-games-hub/constants/game"
	"github.com/M-Destiny/mini-games-hub/services/wordbank"
)

const (
	TeamRed      = "red"
	TeamBlue     = "blue"
	TeamNeutral  = "neutral"
	TeamAssassin = "assassin"
)

// codenamesEngine: two teams, one spymaster each, a 25-card board. The
// active spymaster gives a clue, their operatives guess cards until they
// miss, run out of guesses or hit the assassin. Codenames plays a single
// board per game, so the round counter stays at 1 and nextRound only
// rebuilds the board if a restart ever asks for it.
type codenamesEngine struct{}

func buildBoard() []CodenamesCard {
	words := wordbank.BoardWords(game_constants.CODENAMES_BOARD_SIZE)
	teams := make([]string, 0, game_constants.CODENAMES_BOARD_SIZE)
	teams = append(teams, lo.Times(game_constants.CODENAMES_STARTING_CARDS, func(int) string { return TeamRed })...)
	teams = append(teams, lo.Times(game_constants.CODENAMES_SECOND_CARDS, func(int) string { return TeamBlue })...)
	teams = append(teams, lo.Times(game_constants.CODENAMES_NEUTRAL_CARDS, func(int) string { return TeamNeutral })...)
	teams = append(teams, TeamAssassin)
	teams = lo.Shuffle(teams)

	return lo.Map(words, func(w string, i int) CodenamesCard {
		return CodenamesCard{Word: w, Team: teams[i]}
	})
}

func newCodenamesState(players []*Player) *CodenamesState {
	cn := &CodenamesState{
		Board:      buildBoard(),
		TurnTeam:   TeamRed, // the starting team holds the 9-card set
		Spymasters: make(map[string]string),
		Teams:      make(map[string]string),
	}
	// Teams alternate by join order; the first member of each team is its
	// spymaster.
	for i, p := range players {
		team := TeamRed
		if i%2 == 1 {
			team = TeamBlue
		}
		cn.Teams[p.ID] = team
		if _, has := cn.Spymasters[team]; !has {
			cn.Spymasters[team] = p.ID
		}
	}
	return cn
}

func (codenamesEngine) start(r *Room) []Event {
	r.Codenames = newCodenamesState(r.Players)
	cn := r.Codenames

	events := []Event{broadcast("game-started", gin.H{
		"room":  r.snapshot(),
		"round": r.Round,
	})}
	for _, p := range r.Players {
		events = append(events, toPlayer(p.ID, "codenames-setup", gin.H{
			"cards":       cn.Board,
			"team":        cn.Teams[p.ID],
			"isSpymaster": cn.Spymasters[cn.Teams[p.ID]] == p.ID,
		}))
	}
	events = append(events, broadcast("codenames-turn", gin.H{
		"team":        cn.TurnTeam,
		"guessesLeft": 0,
		"clue":        nil,
	}))
	return events
}

func (codenamesEngine) nextRound(r *Room) []Event {
	return codenamesEngine{}.start(r)
}

func otherTeam(team string) string {
	if team == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// GiveClue sets the active clue. Only the spymaster of the team whose turn
// it is may give one, and only while no clue is pending. The team then gets
// number+1 guesses (the standard bonus guess).
func (reg *Registry) GiveClue(code, connID, clueWord string, number int) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if r.GameType != GameCodenames {
			return ErrWrongGameType
		}
		if !r.Started || r.Codenames == nil {
			return ErrGameNotStarted
		}
		cn := r.Codenames
		if cn.Teams[connID] != cn.TurnTeam {
			return ErrNotYourTeam
		}
		if cn.Spymasters[cn.TurnTeam] != connID {
			return ErrNotSpymaster
		}
		if cn.ActiveClue != nil {
			return ErrClueActive
		}
		if number < 1 {
			number = 1
		}

		cn.ActiveClue = &Clue{Word: strings.ToUpper(strings.TrimSpace(clueWord)), Number: number}
		cn.GuessesLeft = number + 1

		reg.emit(r.Code, []Event{broadcast("codenames-turn", gin.H{
			"team":        cn.TurnTeam,
			"guessesLeft": cn.GuessesLeft,
			"clue":        cn.ActiveClue,
		})})
		log.Printf("[CODENAMES] Clue %q (%d) in room %s for team %s",
			cn.ActiveClue.Word, number, r.Code, cn.TurnTeam)
		ack = gin.H{}
		return nil
	})
	return ack, err
}

// GuessCard reveals the card at index for an operative of the active team.
// Own-team cards keep the turn alive while guesses remain; anything else
// passes the turn, and the assassin ends the game with the guessing team
// losing.
func (reg *Registry) GuessCard(code, connID string, index int) (gin.H, error) {
	var ack gin.H
	err := reg.withRoom(code, func(r *Room) error {
		if r.GameType != GameCodenames {
			return ErrWrongGameType
		}
		if !r.Started || r.Codenames == nil {
			return ErrGameNotStarted
		}
		cn := r.Codenames
		if cn.Teams[connID] != cn.TurnTeam {
			return ErrNotYourTeam
		}
		if cn.Spymasters[cn.TurnTeam] == connID {
			return ErrSpymasterCannotGuess
		}
		if cn.ActiveClue == nil {
			return ErrNoActiveClue
		}
		if index < 0 || index >= len(cn.Board) {
			return ErrInvalidCard
		}
		card := &cn.Board[index]
		if card.Revealed {
			return ErrCardRevealed
		}

		card.Revealed = true
		events := []Event{broadcast("codenames-card-revealed", gin.H{
			"index": index,
			"type":  card.Team,
		})}
		log.Printf("[CODENAMES] Card %d (%s) revealed in room %s by team %s",
			index, card.Team, r.Code, cn.TurnTeam)

		switch card.Team {
		case TeamAssassin:
			winner := otherTeam(cn.TurnTeam)
			events = append(events, reg.codenamesGameOver(r, winner,
				strings.ToUpper(cn.TurnTeam)+" team hit the assassin")...)
		case cn.TurnTeam:
			cn.GuessesLeft--
			if winner, done := boardWinner(cn.Board); done {
				events = append(events, reg.codenamesGameOver(r, winner,
					"All "+winner+" cards revealed")...)
			} else if cn.GuessesLeft > 0 {
				events = append(events, broadcast("codenames-correct-guess", gin.H{
					"guessesLeft": cn.GuessesLeft,
				}))
			} else {
				events = append(events, passTurn(cn)...)
			}
		default:
			// Neutral or opposing card: the turn ends immediately. Revealing
			// the opponent's last card still hands them the win.
			if winner, done := boardWinner(cn.Board); done {
				events = append(events, reg.codenamesGameOver(r, winner,
					"All "+winner+" cards revealed")...)
			} else {
				events = append(events, passTurn(cn)...)
			}
		}

		reg.emit(r.Code, events)
		ack = gin.H{"type": card.Team}
		return nil
	})
	return ack, err
}

// boardWinner reports the team whose cards are all revealed, if any.
func boardWinner(board []CodenamesCard) (string, bool) {
	for _, team := range []string{TeamRed, TeamBlue} {
		remaining := lo.CountBy(board, func(c CodenamesCard) bool {
			return c.Team == team && !c.Revealed
		})
		if remaining == 0 {
			return team, true
		}
	}
	return "", false
}

func passTurn(cn *CodenamesState) []Event {
	cn.TurnTeam = otherTeam(cn.TurnTeam)
	cn.ActiveClue = nil
	cn.GuessesLeft = 0
	return []Event{broadcast("codenames-turn", gin.H{
		"team":        cn.TurnTeam,
		"guessesLeft": 0,
		"clue":        nil,
	})}
}

// codenamesGameOver ends the game in place. The room lock is held; the
// events are returned so the card reveal precedes the game-over broadcast.
func (reg *Registry) codenamesGameOver(r *Room, winner, reason string) []Event {
	r.Started = false
	r.Codenames = nil
	return []Event{broadcast("codenames-game-over", gin.H{
		"winner": winner,
		"reason": reason,
	})}
}
