package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/tkessler/parley/internal/browser"
	"github.com/tkessler/parley/internal/cli"
	"github.com/tkessler/parley/internal/config"
	"github.com/tkessler/parley/internal/dispatch"
	"github.com/tkessler/parley/internal/doctor"
	"github.com/tkessler/parley/internal/gemini"
	"github.com/tkessler/parley/internal/handler"
	"github.com/tkessler/parley/internal/ipc"
	"github.com/tkessler/parley/internal/logging"
	"github.com/tkessler/parley/internal/session"
	"github.com/tkessler/parley/internal/speech"
	"github.com/tkessler/parley/internal/version"
	"github.com/tkessler/parley/internal/weather"
	"github.com/tkessler/parley/internal/wiki"
)

type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdin: os.Stdin, Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	parsed, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, cli.HelpText("parley"))
		return 2
	}

	if parsed.ShowHelp {
		fmt.Fprint(r.Stdout, cli.HelpText("parley"))
		return 0
	}

	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	logRuntime, err := logging.New()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: setup logging: %v\n", err)
		return 1
	}
	defer func() { _ = logRuntime.Close() }()

	logger := r.Logger
	if logger == nil {
		logger = logRuntime.Logger
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("load config failed", "error", err.Error())
		return 1
	}
	for _, w := range cfgLoaded.Warnings {
		fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
		logger.Warn("config warning", "message", w.Message)
	}

	logger.Info("command start",
		"command", parsed.Command,
		"config", cfgLoaded.Path,
		"log", logRuntime.Path,
	)

	switch parsed.Command {
	case cli.CommandDoctor:
		report := doctor.Run(cfgLoaded)
		fmt.Fprintln(r.Stdout, report.String())
		if report.OK() {
			return 0
		}
		return 1
	case cli.CommandStatus:
		return r.commandStatus(ctx)
	case cli.CommandStop:
		return r.forwardOrFail(ctx, "stop")
	case cli.CommandSay:
		return r.commandSay(ctx, cfgLoaded.Config, logger, parsed.Utterance)
	case cli.CommandRun:
		return r.commandRun(ctx, cfgLoaded.Config, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return 2
	}
}

// buildHandlers wires the collaborator stack behind a fresh session state.
func buildHandlers(ctx context.Context, cfg config.Config, logger *slog.Logger) (*handler.Handlers, *session.State) {
	deps := handler.Deps{
		Weather: weather.New(cfg.Weather.BaseURL),
		Wiki:    wiki.New(cfg.Wiki.BaseURL),
		Browser: browser.NewOpener(cfg.Browser.Argv, logger),
	}

	aiConnected := false
	if cfg.AI.Enable && cfg.AI.APIKey != "" {
		client, err := gemini.New(ctx, cfg.AI.APIKey, cfg.AI.Model, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		if err != nil {
			logger.Warn("generative backend unavailable", "error", err.Error())
		} else {
			deps.AI = client
			aiConnected = true
		}
	}

	flags := session.Flags{AIEnabled: aiConnected, SpeechEnabled: cfg.Speech.Enable}
	state := session.New(cfg.HistorySize, flags)
	return handler.New(cfg, logger, state, deps), state
}

func (r Runner) commandSay(ctx context.Context, cfg config.Config, logger *slog.Logger, utterance string) int {
	handlers, state := buildHandlers(ctx, cfg, logger)
	dispatcher := dispatch.New(logger, handlers, state)

	result := dispatcher.Dispatch(ctx, utterance)
	fmt.Fprintln(r.Stdout, result.Response)
	return 0
}

func (r Runner) commandRun(ctx context.Context, cfg config.Config, logger *slog.Logger) int {
	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()

	handlers, state := buildHandlers(ctx, cfg, logger)
	dispatcher := dispatch.New(logger, handlers, state)

	var speaker speech.Speaker = speech.NoopSpeaker{}
	if cfg.Speech.Enable {
		speaker = speech.NewCommandSpeaker(cfg.Speech.SpeakCmd.Argv, logger)
	}

	cleanup, code, ok := r.serveControlSocket(ctx, logger, state, cancelLoop)
	if !ok {
		return code
	}
	defer cleanup()

	promptColor := color.New(color.FgCyan, color.Bold)
	replyColor := color.New(color.FgGreen)

	fmt.Fprintln(r.Stdout, "Parley is listening. Say \"exit\" when you're done.")

	prompt := func() {
		_, _ = promptColor.Fprint(r.Stdout, "you> ")
	}
	transcriber := speech.NewLineTranscriber(r.Stdin, prompt)

	err := dispatcher.Loop(loopCtx, transcriber, func(result dispatch.Result) {
		_, _ = replyColor.Fprint(r.Stdout, "parley> ")
		fmt.Fprintln(r.Stdout, result.Response)
		speaker.Say(ctx, result.Response)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		logger.Error("session loop failed", "error", err.Error())
		return 1
	}

	stats := state.Stats()
	fmt.Fprintf(r.Stdout, "Session over: %d commands in %s.\n",
		stats.Commands, stats.Uptime.Round(time.Second))
	logger.Info("session complete",
		"commands", stats.Commands,
		"uptime_seconds", int64(stats.Uptime.Seconds()),
		"history_length", stats.HistoryLen,
	)
	return 0
}

// serveControlSocket starts the status/stop listener for a running session.
// A missing XDG_RUNTIME_DIR degrades to running without a control socket.
func (r Runner) serveControlSocket(ctx context.Context, logger *slog.Logger, state *session.State, requestStop func()) (func(), int, bool) {
	socketPath, err := ipc.RuntimeSocketPath()
	if err != nil {
		logger.Warn("control socket disabled", "error", err.Error())
		return func() {}, 0, true
	}

	listener, err := ipc.Acquire(ctx, socketPath, 180*time.Millisecond, 8)
	if err != nil {
		if errors.Is(err, ipc.ErrAlreadyRunning) {
			fmt.Fprintln(r.Stderr, "error: a parley session is already running")
			return nil, 1, false
		}
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return nil, 1, false
	}

	serverCtx, serverCancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		serveErr := ipc.Serve(serverCtx, listener, controlHandler(state, requestStop))
		if serveErr != nil {
			logger.Error("control socket server failed", "error", serveErr.Error())
		}
	}()

	cleanup := func() {
		serverCancel()
		<-done
		_ = os.Remove(socketPath)
	}
	return cleanup, 0, true
}

// controlHandler answers status and stop requests from a sibling process.
func controlHandler(state *session.State, requestStop func()) ipc.HandlerFunc {
	return func(_ context.Context, req ipc.Request) ipc.Response {
		switch req.Command {
		case "status":
			stats := state.Stats()
			return ipc.Response{
				OK:            true,
				State:         string(stats.Phase),
				Commands:      stats.Commands,
				UptimeSeconds: int64(stats.Uptime.Seconds()),
			}
		case "stop":
			requestStop()
			return ipc.Response{OK: true, Message: "stopping"}
		default:
			return ipc.Response{OK: false, Error: fmt.Sprintf("unknown command %q", req.Command)}
		}
	}
}

func (r Runner) commandStatus(ctx context.Context) int {
	socketPath, err := ipc.RuntimeSocketPath()
	if err != nil {
		fmt.Fprintln(r.Stdout, "idle")
		return 0
	}

	resp, handled, err := tryForward(ctx, socketPath, "status")
	if handled {
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return 1
		}
		if resp.State == "" {
			resp.State = "idle"
		}
		fmt.Fprintf(r.Stdout, "%s: %d commands, up %s\n",
			resp.State, resp.Commands, (time.Duration(resp.UptimeSeconds) * time.Second).String())
		return 0
	}

	fmt.Fprintln(r.Stdout, "idle")
	return 0
}

func (r Runner) forwardOrFail(ctx context.Context, command string) int {
	socketPath, err := ipc.RuntimeSocketPath()
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}

	resp, handled, err := tryForward(ctx, socketPath, command)
	if !handled {
		fmt.Fprintf(r.Stderr, "error: no active parley session\n")
		return 1
	}
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return 1
	}
	if resp.Message != "" {
		fmt.Fprintln(r.Stdout, resp.Message)
	}
	return 0
}

func tryForward(ctx context.Context, socketPath string, command string) (ipc.Response, bool, error) {
	resp, err := ipc.Send(ctx, socketPath, ipc.Request{Command: command}, 220*time.Millisecond)
	if err == nil {
		if resp.OK {
			return resp, true, nil
		}
		return resp, true, errors.New(resp.Error)
	}

	if ipc.IsSocketMissing(err) || ipc.IsConnectionRefused(err) {
		return ipc.Response{}, false, nil
	}

	return ipc.Response{}, true, fmt.Errorf("forward command %q: %w", command, err)
}
