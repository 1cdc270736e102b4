package main

import (
	"log/slog"
	"os"
	"square_bet/internal/app"
)

func main() {
	if err := app.NewApp().Run(); err != nil {
		slog.Error("game failed", "error", err)
		os.Exit(1)
	}
}
