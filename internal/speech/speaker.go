package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// Speaker voices a response. Fire-and-forget: implementations swallow their
// own failures and never surface them as core errors.
type Speaker interface {
	Say(context.Context, string)
}

// NoopSpeaker is used when speech output is disabled.
type NoopSpeaker struct{}

func (NoopSpeaker) Say(context.Context, string) {}

// CommandSpeaker pipes response text to an external TTS command (espeak,
// say, piper).
type CommandSpeaker struct {
	argv   []string
	logger *slog.Logger
}

// NewCommandSpeaker constructs a speaker from a command argv.
func NewCommandSpeaker(argv []string, logger *slog.Logger) *CommandSpeaker {
	return &CommandSpeaker{argv: argv, logger: logger}
}

func (s *CommandSpeaker) Say(ctx context.Context, text string) {
	if len(s.argv) == 0 || text == "" {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(runCtx, s.argv[0], s.argv[1:]...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		s.logFailure(fmt.Errorf("open stdin for %s: %w", s.argv[0], err))
		return
	}

	if err := cmd.Start(); err != nil {
		_ = stdin.Close()
		s.logFailure(fmt.Errorf("start %s: %w", s.argv[0], err))
		return
	}

	if _, err := stdin.Write([]byte(text)); err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		s.logFailure(fmt.Errorf("write stdin for %s: %w", s.argv[0], err))
		return
	}
	_ = stdin.Close()

	if err := cmd.Wait(); err != nil {
		s.logFailure(fmt.Errorf("wait for %s: %w", s.argv[0], err))
	}
}

// logFailure records speaker errors without surfacing them to the dispatcher.
func (s *CommandSpeaker) logFailure(err error) {
	if s.logger == nil || err == nil {
		return
	}
	s.logger.Error("speech output failed", "error", err.Error())
}
