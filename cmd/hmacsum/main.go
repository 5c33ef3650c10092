package main

import (
	"fmt"
	"log"

	"github.com/andymarkow/go-hmac-signer/internal/hmacsum"
)

func main() {
	app, err := hmacsum.NewApp()
	if err != nil {
		log.Fatal(fmt.Errorf("hmacsum.NewApp: %w", err))
	}

	if err := app.Run(); err != nil {
		log.Fatal(fmt.Errorf("app.Run: %w", err))
	}
}
