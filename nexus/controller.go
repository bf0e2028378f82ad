// Package nexus implements the session-scoped command/result state
// machine: it binds the live upload session to a sequence of executed
// commands, accumulates their results in the ledger, and keeps spoken
// playback synchronized with the newest result.
//
// The controller initializes from configuration via New, creating all
// subsystems internally. Functional options allow test overrides of any
// subsystem.
//
//	c, err := nexus.New(&cfg)
//	sess, err := c.Upload(ctx, "report.csv", file)
//	rec, err := c.Execute(ctx, "summarize this file")
package nexus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/file-command-nexus/nexus/client"
	"github.com/file-command-nexus/nexus/core/api"
	"github.com/file-command-nexus/nexus/ledger"
	"github.com/file-command-nexus/nexus/media"
	"github.com/file-command-nexus/nexus/notify"
	"github.com/file-command-nexus/nexus/observability"
	"github.com/file-command-nexus/nexus/session"
	"github.com/file-command-nexus/nexus/speech"
)

// BoundaryClient abstracts the remote boundary for testability. The
// default implementation is *client.Client.
type BoundaryClient interface {
	Upload(ctx context.Context, filename string, content io.Reader) (*api.UploadResponse, error)
	Ask(ctx context.Context, question, sessionID string) (*api.AskResponse, error)
	Cleanup(ctx context.Context, sessionID string) error
}

// Speaker abstracts the speech playback controller.
type Speaker interface {
	Sync(text string, revision uint64)
	Resume()
	Stop()
}

// Option configures a Controller after config-driven initialization.
// Applied by New after cold start — overrides replace config-created
// defaults.
type Option func(*Controller)

// WithClient overrides the config-created boundary client.
func WithClient(bc BoundaryClient) Option {
	return func(c *Controller) { c.client = bc }
}

// WithRegistry overrides the config-created session registry.
func WithRegistry(r session.Registry) Option {
	return func(c *Controller) { c.registry = r }
}

// WithLedger overrides the config-created result ledger.
func WithLedger(l ledger.Ledger) Option {
	return func(c *Controller) { c.ledger = l }
}

// WithSpeaker overrides the config-created speech controller.
func WithSpeaker(s Speaker) Option {
	return func(c *Controller) { c.speaker = s }
}

// WithNotifier overrides the default SlogNotifier.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithObserver overrides the config-selected observer.
func WithObserver(o observability.Observer) Option {
	return func(c *Controller) { c.observer = o }
}

// Controller owns the only shared-mutable state of the client: the
// session registry and the result ledger. All mutation goes through its
// methods; other components only read.
type Controller struct {
	client   BoundaryClient
	registry session.Registry
	ledger   ledger.Ledger
	speaker  Speaker
	notifier notify.Notifier
	observer observability.Observer
	clips    *media.Cache

	uploading atomic.Bool
	executing atomic.Bool
}

// New creates a Controller from configuration. Subsystems are
// initialized from their respective config sections; functional options
// applied after initialization can override any of them.
//
// A configured speech engine that cannot start (no synthesizer on PATH)
// degrades to the noop engine with a warning event rather than failing
// construction: speech must never block the rest of the client.
func New(cfg *Config, opts ...Option) (*Controller, error) {
	observerName := cfg.Observer
	if observerName == "" {
		observerName = defaultObserver
	}
	observer, err := observability.GetObserver(observerName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	c := &Controller{
		client:   client.New(&cfg.Client),
		registry: session.NewMemoryRegistry(),
		ledger:   ledger.NewMemoryLedger(),
		notifier: notify.NewSlogNotifier(slog.Default()),
		observer: observer,
		clips:    media.NewCache(media.NewStore(&cfg.Media)),
	}

	engineName := cfg.Speech.Engine
	if cfg.Speech.Disabled {
		engineName = "noop"
	}
	engine, err := speech.New(engineName, &cfg.Speech, c.clips)
	if err != nil {
		c.emit(speech.EventVoicesUnavailable, observability.LevelWarning, map[string]any{
			"engine": engineName,
			"error":  err.Error(),
		})
		engine = speech.NoopEngine{}
	}
	c.speaker = speech.NewController(engine, &cfg.Speech, observer)

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Upload sends a file to the boundary and installs the session it
// creates. On success the previous ledger contents are cleared so every
// displayed result stays attributable to the current file. On failure
// the registry and ledger are untouched.
//
// At most one upload is in flight at a time; a concurrent call fails
// with ErrUploadInFlight.
func (c *Controller) Upload(ctx context.Context, filename string, content io.Reader) (session.Session, error) {
	if !c.uploading.CompareAndSwap(false, true) {
		return session.Session{}, ErrUploadInFlight
	}
	defer c.uploading.Store(false)

	c.emit(EventUploadStart, observability.LevelInfo, map[string]any{"filename": filename})

	resp, err := c.client.Upload(ctx, filename, content)
	if err != nil {
		c.notifyError(ctx, "Upload Failed", failureMessage(err, "An error occurred during upload."))
		c.emit(EventUploadError, observability.LevelWarning, map[string]any{"error": err.Error()})
		return session.Session{}, fmt.Errorf("upload: %w", err)
	}

	sess := session.Session{ID: resp.SessionID, FileName: resp.Filename}
	c.registry.Set(sess)
	c.ledger.Clear()
	c.syncSpeaker()

	c.notifier.Notify(ctx, notify.New(notify.KindInfo, "File Uploaded",
		fmt.Sprintf("%s was successfully uploaded.", sess.FileName)))
	c.emit(EventUploadComplete, observability.LevelInfo, map[string]any{
		"session_id": sess.ID,
		"filename":   sess.FileName,
	})

	return sess, nil
}

// Execute submits a question against the current session and appends the
// outcome to the ledger.
//
// Preconditions run in order before any network activity: a session must
// exist (ErrNoSession) and the trimmed question must be non-empty
// (ErrEmptyCommand). A boundary-reported failure still appends a record
// — stdout empty, the boundary's message in stderr — and returns that
// record with a nil error; the failure surfaces as a notification. A
// transport failure appends nothing and returns the error.
func (c *Controller) Execute(ctx context.Context, question string) (ledger.Record, error) {
	sess, ok := c.registry.Get()
	if !ok {
		c.notifyError(ctx, "No File Uploaded", "Please upload a file first.")
		return ledger.Record{}, ErrNoSession
	}

	q := strings.TrimSpace(question)
	if q == "" {
		c.notifyError(ctx, "Empty Command", "Please enter a command to execute.")
		return ledger.Record{}, ErrEmptyCommand
	}

	if !c.executing.CompareAndSwap(false, true) {
		return ledger.Record{}, ErrExecuteInFlight
	}
	defer c.executing.Store(false)

	c.emit(EventExecuteStart, observability.LevelInfo, map[string]any{
		"session_id":      sess.ID,
		"question_length": len(q),
	})

	resp, err := c.client.Ask(ctx, q, sess.ID)

	var boundaryErr *client.BoundaryError
	switch {
	case err == nil:
		rec := ledger.Record{
			Question:  q,
			Result:    ledger.Result{Stdout: resp.Answer, Stderr: "", ReturnCode: 0},
			Timestamp: time.Now().UTC(),
		}
		c.ledger.Append(rec)
		c.syncSpeaker()
		c.emit(EventExecuteComplete, observability.LevelInfo, map[string]any{
			"session_id":    sess.ID,
			"answer_length": len(resp.Answer),
		})
		return rec, nil

	case errors.As(err, &boundaryErr):
		// The boundary reports failure in prose, not an exit status,
		// so the record carries its message in stderr with code 0.
		rec := ledger.Record{
			Question:  q,
			Result:    ledger.Result{Stdout: "", Stderr: boundaryErr.Message, ReturnCode: 0},
			Timestamp: time.Now().UTC(),
		}
		c.ledger.Append(rec)
		c.syncSpeaker()
		c.notifyError(ctx, "Execution Failed", boundaryErr.Message)
		c.emit(EventExecuteError, observability.LevelWarning, map[string]any{
			"session_id": sess.ID,
			"error":      boundaryErr.Message,
		})
		return rec, nil

	default:
		c.notifyError(ctx, "Execution Failed", "Could not connect to the server.")
		c.emit(EventExecuteError, observability.LevelWarning, map[string]any{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return ledger.Record{}, fmt.Errorf("execute: %w", err)
	}
}

// ClearResults empties the ledger and cancels any playback derived from
// it.
func (c *Controller) ClearResults() {
	c.ledger.Clear()
	c.syncSpeaker()
	c.emit(EventLedgerClear, observability.LevelVerbose, nil)
}

// Cleanup releases the boundary's server-side session state and drops
// all local state. Local state is cleared even when the boundary call
// fails; the failure is surfaced as a notification and returned.
func (c *Controller) Cleanup(ctx context.Context) error {
	sess, ok := c.registry.Get()

	var err error
	if ok {
		if err = c.client.Cleanup(ctx, sess.ID); err != nil {
			c.notifyError(ctx, "Cleanup Failed", failureMessage(err, "An error occurred during cleanup."))
		}
	}

	c.registry.Clear()
	c.ledger.Clear()
	c.syncSpeaker()
	if c.clips != nil {
		_ = c.clips.Prune(ctx)
	}

	c.emit(EventCleanup, observability.LevelInfo, map[string]any{"had_session": ok})

	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	return nil
}

// Resume replays the current utterance from the start.
func (c *Controller) Resume() { c.speaker.Resume() }

// Stop cancels in-flight speech playback.
func (c *Controller) Stop() { c.speaker.Stop() }

// CurrentSession returns the live session, reporting whether one exists.
func (c *Controller) CurrentSession() (session.Session, bool) {
	return c.registry.Get()
}

// Records returns a copy of all ledger entries, oldest first.
func (c *Controller) Records() []ledger.Record {
	return c.ledger.Records()
}

// Uploading reports whether an upload is in flight.
func (c *Controller) Uploading() bool { return c.uploading.Load() }

// Executing reports whether an execution is in flight.
func (c *Controller) Executing() bool { return c.executing.Load() }

// syncSpeaker reconciles playback with the ledger head. The record and
// revision come from one Head snapshot so a concurrent clear can never
// pair stale text with a newer revision.
func (c *Controller) syncSpeaker() {
	head, revision, ok := c.ledger.Head()
	text := ""
	if ok {
		text = head.Result.Stdout
	}
	c.speaker.Sync(text, revision)
}

func (c *Controller) notifyError(ctx context.Context, title, message string) {
	c.notifier.Notify(ctx, notify.New(notify.KindError, title, message))
}

func (c *Controller) emit(t observability.EventType, level observability.Level, data map[string]any) {
	c.observer.OnEvent(context.Background(), observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "nexus.Controller",
		Data:      data,
	})
}

// failureMessage picks the user-facing text for a boundary call error:
// the boundary's own message when it rejected the call, a generic
// connection message when it never answered.
func failureMessage(err error, fallback string) string {
	var boundaryErr *client.BoundaryError
	if errors.As(err, &boundaryErr) {
		if boundaryErr.Message != "" {
			return boundaryErr.Message
		}
		return fallback
	}
	return "Could not connect to the server."
}
