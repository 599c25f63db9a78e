package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	_ "github.com/M-Destiny/mini-games-hub/config/swagger"
	"github.com/M-Destiny/mini-games-hub/middleware"
	"github.com/M-Destiny/mini-games-hub/routes"
	"github.com/M-Destiny/mini-games-hub/services/game"
	"github.com/M-Destiny/mini-games-hub/services/socket_io"
	socketio_types "github.com/M-Destiny/mini-games-hub/services/socket_io/types"
)

// @title Mini Games Hub API
// @version 1.0
// @description Gin-Gonic server for the mini games hub backend
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	sio := socketio_types.NewSocketServer()
	registry := game.NewRegistry(sio)

	(*socket_io.MySocketServer)(sio).Start(r, registry)

	routes.SetupRoutes(r, sio, registry)

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-signalC
		(*socket_io.MySocketServer)(sio).Close()
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
