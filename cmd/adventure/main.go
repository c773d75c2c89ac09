package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/pixil98/go-service"

	"github.com/pixil98/text-adventure/cmd/adventure/command"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := service.NewApp(&command.Config{}, command.WorkerBuilder(cancel))
	if err != nil {
		slog.Error("creating application", "error", err)
		os.Exit(1)
	}

	err = app.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("running application", "error", err)
		os.Exit(1)
	}
}
