// Package tui renders the two-pane terminal surface: upload and command
// input on the left, the chronological result list on the right, with a
// toast line for notifications. All controller calls run as commands so
// the UI never blocks.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/file-command-nexus/nexus/ledger"
	"github.com/file-command-nexus/nexus/nexus"
	"github.com/file-command-nexus/nexus/notify"
	"github.com/file-command-nexus/nexus/session"
)

const toastLifetime = 4 * time.Second

type focus int

const (
	focusFile focus = iota
	focusCommand
)

type (
	uploadedMsg struct {
		sess session.Session
		err  error
	}
	executedMsg struct {
		rec ledger.Record
		err error
	}
	// notifMsg is only ever produced by listenNotifications; its
	// handler is the one place the listener is re-armed.
	notifMsg        notify.Notification
	toastExpiredMsg struct{ id string }
	cleanupDoneMsg  struct{}
)

type Model struct {
	controller *nexus.Controller
	notifs     *notify.ChannelNotifier

	fileInput textinput.Model
	cmdInput  textinput.Model
	results   viewport.Model
	spin      spinner.Model

	focus    focus
	width    int
	height   int
	toast    *notify.Notification
	busy     bool
	quitting bool
}

// NewModel creates the TUI model over a controller. notifs must be the
// same ChannelNotifier wired into the controller so toasts reach the
// screen.
func NewModel(controller *nexus.Controller, notifs *notify.ChannelNotifier) Model {
	fi := textinput.New()
	fi.Placeholder = "path to file..."
	fi.CharLimit = 512
	fi.Focus()

	ci := textinput.New()
	ci.Placeholder = "enter command (e.g. 'summarize this file')..."
	ci.CharLimit = 1024

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		controller: controller,
		notifs:     notifs,
		fileInput:  fi,
		cmdInput:   ci,
		results:    viewport.New(60, 20),
		spin:       sp,
		width:      120,
		height:     30,
	}
	m.refreshResults()
	return m
}

// WithInitialFile pre-fills the file input so the user can upload with
// a single enter.
func (m Model) WithInitialFile(path string) Model {
	m.fileInput.SetValue(path)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, listenNotifications(m.notifs))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.Width = m.rightWidth() - 4
		m.results.Height = m.height - 6
		m.refreshResults()
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)

	case notifMsg:
		n := notify.Notification(msg)
		m.toast = &n
		return m, tea.Batch(
			listenNotifications(m.notifs),
			tea.Tick(toastLifetime, func(time.Time) tea.Msg { return toastExpiredMsg{id: n.ID} }),
		)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.ID == msg.id {
			m.toast = nil
		}
		return m, nil

	case uploadedMsg:
		m.busy = false
		if msg.err == nil {
			m.cmdInput.Focus()
			m.fileInput.Blur()
			m.focus = focusCommand
		}
		m.refreshResults()
		return m, nil

	case executedMsg:
		m.busy = false
		if msg.err == nil {
			m.cmdInput.SetValue("")
		}
		m.refreshResults()
		m.results.GotoBottom()
		return m, nil

	case cleanupDoneMsg:
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		if m.quitting {
			return m, tea.Quit
		}
		m.quitting = true
		return m, cleanupCmd(m.controller)

	case "tab":
		if m.focus == focusFile {
			m.focus = focusCommand
			m.fileInput.Blur()
			m.cmdInput.Focus()
		} else {
			m.focus = focusFile
			m.cmdInput.Blur()
			m.fileInput.Focus()
		}
		return m, nil

	case "enter":
		if m.busy {
			return m, nil
		}
		if m.focus == focusFile {
			m.busy = true
			return m, tea.Batch(m.spin.Tick, uploadCmd(m.controller, m.notifs, m.fileInput.Value()))
		}
		m.busy = true
		return m, tea.Batch(m.spin.Tick, executeCmd(m.controller, m.cmdInput.Value()))

	case "ctrl+l":
		m.controller.ClearResults()
		m.refreshResults()
		return m, nil

	case "ctrl+r":
		m.controller.Resume()
		return m, nil

	case "ctrl+s":
		m.controller.Stop()
		return m, nil

	case "ctrl+y":
		return m, yankCmd(m.controller, m.notifs)

	case "pgup":
		m.results.HalfViewUp()
		return m, nil

	case "pgdown":
		m.results.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusFile {
		m.fileInput, cmd = m.fileInput.Update(msg)
	} else {
		m.cmdInput, cmd = m.cmdInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) refreshResults() {
	m.results.SetContent(renderRecords(m.controller.Records(), m.results.Width))
}

func listenNotifications(notifs *notify.ChannelNotifier) tea.Cmd {
	return func() tea.Msg {
		return notifMsg(<-notifs.C())
	}
}

// uploadCmd resolves the local file and hands it to the controller.
// Local failures report through notifs and still settle as uploadedMsg
// so the busy flag always releases.
func uploadCmd(controller *nexus.Controller, notifs *notify.ChannelNotifier, path string) tea.Cmd {
	return func() tea.Msg {
		path = strings.TrimSpace(path)
		if path == "" {
			err := fmt.Errorf("no file path entered")
			notifs.Notify(context.Background(), notify.New(notify.KindError, "Upload Failed", "Please enter a file path."))
			return uploadedMsg{err: err}
		}
		f, err := os.Open(path)
		if err != nil {
			notifs.Notify(context.Background(), notify.New(notify.KindError, "Upload Failed", fmt.Sprintf("Cannot open %s.", path)))
			return uploadedMsg{err: fmt.Errorf("open file: %w", err)}
		}
		defer f.Close()

		sess, err := controller.Upload(context.Background(), filepath.Base(path), f)
		return uploadedMsg{sess: sess, err: err}
	}
}

func executeCmd(controller *nexus.Controller, question string) tea.Cmd {
	return func() tea.Msg {
		rec, err := controller.Execute(context.Background(), question)
		return executedMsg{rec: rec, err: err}
	}
}

func cleanupCmd(controller *nexus.Controller) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = controller.Cleanup(ctx)
		return cleanupDoneMsg{}
	}
}

func yankCmd(controller *nexus.Controller, notifs *notify.ChannelNotifier) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		records := controller.Records()
		if len(records) == 0 {
			notifs.Notify(ctx, notify.New(notify.KindError, "Nothing to Copy", "No results yet."))
			return nil
		}
		newest := records[len(records)-1]
		if err := clipboard.WriteAll(newest.Result.Stdout); err != nil {
			notifs.Notify(ctx, notify.New(notify.KindError, "Copy Failed", "Clipboard is unavailable."))
			return nil
		}
		notifs.Notify(ctx, notify.New(notify.KindInfo, "Copied", "Newest result copied to clipboard."))
		return nil
	}
}
