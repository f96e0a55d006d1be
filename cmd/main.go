package main

import (
	"fmt"
	"os"

	"github.com/shoplist-app/shoplist-backend/internal/app"
	"github.com/shoplist-app/shoplist-backend/internal/utils"
)

func main() {
	theApp, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer theApp.Close()

	port := utils.GetEnv("PORT", "8080", theApp.Log)
	theApp.Log.Info("Server listening", "port", port)
	if err := theApp.Run(":" + port); err != nil {
		theApp.Log.Fatal("Server failed", "error", err)
	}
}
