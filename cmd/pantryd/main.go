package main

import (
	"context"
	"log"

	"github.com/pantrykit/pantry/pkg/api"
	"github.com/pantrykit/pantry/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := api.Serve(context.Background(), cfg); err != nil {
		log.Fatal(err)
	}
}
