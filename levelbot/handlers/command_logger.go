package handlers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/logger"
)

// WrapWithLogging wraps a command handler with logging and a timeout.
func WrapWithLogging(name string, h handler.CommandHandler) handler.CommandHandler {
	return WrapWithLoggingTimeout(name, config.CommandExecutionTimeout, h)
}

// WrapWithLoggingTimeout is WrapWithLogging with a custom timeout, for
// commands that defer and do slow work (exports, image rendering).
func WrapWithLoggingTimeout(name string, timeout time.Duration, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		start := time.Now()

		slog.Info("Command started",
			slog.String("type", "cmd"),
			slog.String("name", name),
			slog.String("user_id", e.User().ID.String()),
			slog.String("user_name", e.User().Username),
		)

		done := make(chan error, 1)
		go func() {
			done <- h(e)
		}()

		select {
		case err := <-done:
			logger.LogCommand(name, e.User().Username, time.Since(start), err)
			return err

		case <-time.After(timeout):
			slog.Error("Command timed out",
				slog.String("type", "cmd"),
				slog.String("name", name),
				slog.String("user_id", e.User().ID.String()),
				slog.String("user_name", e.User().Username),
				slog.String("status", "timeout"),
				slog.Duration("timeout", timeout),
			)
			return fmt.Errorf("command timed out after %s", timeout)
		}
	}
}
