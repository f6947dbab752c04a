package main

import (
	"github.com/Tamjid17/TGBot/internal/app"
	"github.com/Tamjid17/TGBot/internal/configs"
)

func main() {
	config := configs.LoadConfig()
	application := app.NewPhotoBotApplication(config)
	if err := application.Start(); err != nil {
		return
	}
}
