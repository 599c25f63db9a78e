package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/M-Destiny/mini-games-hub/services/game"
	socketio_types "github.com/M-Destiny/mini-games-hub/services/socket_io/types"
)

// @Summary Basic liveness check
// @Description Returns a pong message
// @Tags status
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Process status
// @Description Reports server status and the number of connected clients
// @Tags status
// @Produce json
// @Success 200 {object} object{status=string,players=integer,rooms=integer}
// @Router /health [get]
func Health(sio *socketio_types.SocketServer, reg *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"players": sio.ConnectionCount(),
			"rooms":   reg.RoomCount(),
		})
	}
}

// @Summary Lists all active rooms
// @Description Returns a summary of every live room
// @Tags rooms
// @Produce json
// @Success 200 {object} object{rooms=[]object{id=string,name=string,gameType=string,playerCount=integer,gameStarted=bool}}
// @Router /rooms [get]
func ListRooms(reg *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": reg.RoomSummaries()})
	}
}

// @Summary Gives info of a room
// @Description Returns the full client-facing snapshot of one room
// @Tags rooms
// @Produce json
// @Param code path string true "Room code (case-insensitive)"
// @Success 200 {object} object{room=object}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{code} [get]
func GetRoomInfo(reg *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := reg.RoomSnapshot(c.Param("code"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}
