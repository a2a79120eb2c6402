// Command api runs the pulseboard HTTP server.
package main

import (
	"context"
	"log"

	"github.com/pulseboard/pulseboard-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
