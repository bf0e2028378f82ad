package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/file-command-nexus/nexus/nexus"
	"github.com/file-command-nexus/nexus/notify"
	"github.com/file-command-nexus/nexus/tui"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file")
		serverURL  = flag.String("server", "", "Boundary server URL (overrides config)")
		filePath   = flag.String("file", "", "File to upload; with -ask runs one-shot mode")
		ask        = flag.String("ask", "", "Command to run against the uploaded file, then exit")
		noSpeech   = flag.Bool("no-speech", false, "Disable speech playback")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	cfg := nexus.DefaultConfig()
	if *configFile != "" {
		loaded, err := nexus.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg.Merge(loaded)
	}
	if err := cfg.FromEnv(); err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *noSpeech {
		cfg.Speech.Disabled = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *ask != "" {
		if *filePath == "" {
			fmt.Fprintln(os.Stderr, "Usage: nexus -file <path> -ask <command>")
			flag.PrintDefaults()
			os.Exit(1)
		}
		cfg.Speech.Disabled = true
		if err := runOneShot(ctx, &cfg, *filePath, *ask); err != nil {
			log.Fatalf("One-shot run failed: %v", err)
		}
		return
	}

	if err := runTUI(ctx, &cfg, *filePath); err != nil {
		log.Fatalf("TUI failed: %v", err)
	}
}

// runOneShot uploads the file, executes a single command, prints the
// result, and releases the session.
func runOneShot(ctx context.Context, cfg *nexus.Config, filePath, question string) error {
	controller, err := nexus.New(cfg)
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	sess, err := controller.Upload(ctx, filepath.Base(filePath), f)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	slog.Debug("uploaded", "session_id", sess.ID, "file", sess.FileName)

	rec, err := controller.Execute(ctx, question)
	if err != nil {
		return fmt.Errorf("execute: %w", err)
	}

	if rec.Result.Stdout != "" {
		fmt.Println(rec.Result.Stdout)
	}
	if rec.Result.Stderr != "" {
		fmt.Fprintln(os.Stderr, rec.Result.Stderr)
	}

	if err := controller.Cleanup(ctx); err != nil {
		slog.Warn("cleanup failed", "error", err)
	}
	if rec.Result.Stderr != "" {
		os.Exit(1)
	}
	return nil
}

func runTUI(ctx context.Context, cfg *nexus.Config, filePath string) error {
	notifs := notify.NewChannelNotifier()
	notifier := notify.NewMultiNotifier(notify.NewSlogNotifier(slog.Default()), notifs)

	controller, err := nexus.New(cfg, nexus.WithNotifier(notifier))
	if err != nil {
		return fmt.Errorf("create controller: %w", err)
	}

	model := tui.NewModel(controller, notifs)
	if filePath != "" {
		model = model.WithInitialFile(filePath)
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
