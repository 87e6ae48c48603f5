package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/destars/debox-chat-go/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := cli.NewConfig()
	rc, err := cli.Run(ctx, os.Args[1:], config)
	if err != nil {
		fmt.Fprintf(config.Stderr, "%s: error: %v\n", config.Name, err)
	}
	stop()
	os.Exit(rc)
}
