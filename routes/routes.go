package routes

import (
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/M-Destiny/mini-games-hub/controllers"
	"github.com/M-Destiny/mini-games-hub/services/game"
	socketio_types "github.com/M-Destiny/mini-games-hub/services/socket_io/types"
)

// SetupRoutes configures all REST routes. The socket.io endpoints are
// mounted separately by the socket server itself.
func SetupRoutes(router *gin.Engine, sio *socketio_types.SocketServer, reg *game.Registry) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	// The liveness endpoint the client deploy checks poll; "/" kept as an
	// alias for platform health checks that only hit the root.
	api.GET("/health", controllers.Health(sio, reg))
	api.GET("/", controllers.Health(sio, reg))

	rooms := api.Group("/rooms")
	{
		rooms.GET("", controllers.ListRooms(reg))

		rooms.GET("/:code", controllers.GetRoomInfo(reg))
	}
}
