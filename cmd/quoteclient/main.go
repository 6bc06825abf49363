// Package main is a line-oriented terminal client for the quotebook service.
//
// Commands, one per line:
//
//	n  fetch the next quote
//	s  save the current quote
//	l  reload the saved quotes
//	q  quit
//
// QUOTEBOOK_API_URL points the client at the service.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jsamuelsen/quotebook/internal/client"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	level := os.Getenv("QUOTEBOOK_LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: "quoteclient",
		Version: "dev",
	}, os.Stderr)
	logging.SetDefault(logger)

	cfg, err := client.LoadAPIConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	api, err := client.NewAPI(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}

	model := client.NewModel(client.ModelConfig{
		API:      api,
		Notifier: client.NewLogNotifier(logger),
		Logger:   logger,
	})

	logger.Debug("connecting", slog.String("api_url", cfg.BaseURL))

	return loop(ctx, os.Stdin, model, client.NewTerminalRenderer(os.Stdout))
}

// loop mounts the model and then executes commands read from in until
// "q", end of input or ctx cancellation.
func loop(ctx context.Context, in io.Reader, model *client.Model, renderer client.Renderer) error {
	model.Mount(ctx)
	_ = model.LoadSaved(ctx)

	if err := renderer.Render(model.View()); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		var line string
		var ok bool

		select {
		case <-ctx.Done():
			return nil
		case line, ok = <-lines:
			if !ok {
				return nil
			}
		}

		switch strings.ToLower(line) {
		case "n":
			model.Refetch(ctx)
		case "s":
			model.Save(ctx)
		case "l":
			_ = model.LoadSaved(ctx)
		case "q":
			return nil
		case "":
			continue
		default:
			slog.WarnContext(ctx, "unknown command", slog.String("command", line))
			continue
		}

		if err := renderer.Render(model.View()); err != nil {
			return err
		}
	}
}
