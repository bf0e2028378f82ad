package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/file-command-nexus/nexus/notify"
)

func (m Model) View() string {
	if m.quitting {
		return "cleaning up...\n"
	}

	left := m.renderLeft()
	right := m.renderRight()

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	toast := ""
	if m.toast != nil {
		style := infoToastStyle
		if m.toast.Kind == notify.KindError {
			style = errorToastStyle
		}
		toast = style.Render(fmt.Sprintf("%s: %s", m.toast.Title, m.toast.Message))
	}

	help := helpStyle.Render("tab: switch · enter: submit · ctrl+l: clear · ctrl+r: speak · ctrl+s: mute · ctrl+y: copy · esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left, panes, toast, help)
}

func (m Model) leftWidth() int {
	w := m.width / 3
	if w < 34 {
		w = 34
	}
	return w
}

func (m Model) rightWidth() int {
	return m.width - m.leftWidth() - 2
}

func (m Model) renderLeft() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("File Command Nexus"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("File"))
	b.WriteString("\n")
	b.WriteString(m.fileInput.View())
	b.WriteString("\n\n")

	if sess, ok := m.controller.CurrentSession(); ok {
		b.WriteString(fileCardStyle.Render(fmt.Sprintf("▣ %s", sess.FileName)))
	} else {
		b.WriteString(dimStyle.Render("no file uploaded"))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Command"))
	b.WriteString("\n")
	b.WriteString(m.cmdInput.View())
	b.WriteString("\n")

	if m.busy {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(dimStyle.Render(" working..."))
	}

	style := paneStyle
	if m.focus == focusFile {
		style = focusedPaneStyle
	}
	return style.Width(m.leftWidth()).Height(m.height - 5).Render(b.String())
}

func (m Model) renderRight() string {
	style := paneStyle
	if m.focus == focusCommand {
		style = focusedPaneStyle
	}
	return style.Width(m.rightWidth()).Height(m.height - 5).Render(m.results.View())
}
