package main

import (
	"net/http"
	"os"

	"docbuilder/config/database"
	"docbuilder/pkg/logger"
	"docbuilder/router"
	"docbuilder/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	db := database.Connect()
	defer db.Close()

	hub := socket.NewHub(db)
	go hub.Run()

	handler := router.Setup(db, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Sugar.Infof("Backend listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logger.Sugar.Fatalf("Server exited: %v", err)
	}
}
