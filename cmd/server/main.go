// Command server runs the Today Record HTTP API.
package main

import (
	"context"
	"log"

	"github.com/heartmarshall/today-record-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
