package main

import (
	"log"

	"github.com/m3rciful/menubot/app"
	"github.com/m3rciful/menubot/core/cmd"
)

func main() {
	if err := cmd.Run(app.RunOptions()); err != nil {
		log.Fatalf("menubot: %v", err)
	}
}
