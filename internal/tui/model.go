// Package tui renders the task list as a Bubble Tea program. All task
// state lives in the controller; this package is input handling and
// drawing only.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nja-rasheed/taskfy/internal/client"
	"github.com/nja-rasheed/taskfy/internal/controller"
)

const requestTimeout = 10 * time.Second

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// row is one rendered line: either a category header or a task.
type row struct {
	header string
	task   client.Task
}

type model struct {
	ctrl   *controller.Controller
	mode   mode
	cursor int
	ti     textinput.Model
	catIdx int

	// LoggedOut is set when the user chose logout; the caller deletes the
	// stored session and returns to login.
	LoggedOut bool
}

// Run starts the interactive task list for an initialized controller.
// It reports whether the user logged out (as opposed to just quitting).
func Run(ctrl *controller.Controller) (bool, error) {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Enter your task..."
	ti.CharLimit = 200

	m := model{ctrl: ctrl, ti: ti}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(model)
	return ok && fm.LoggedOut, nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) rows() []row {
	grouped := m.ctrl.Grouped()
	var rows []row
	for _, cat := range m.ctrl.GroupOrder() {
		rows = append(rows, row{header: cat})
		for _, t := range grouped[cat] {
			rows = append(rows, row{task: t})
		}
	}
	return rows
}

// taskAt returns the task under the cursor, skipping header rows.
func (m model) taskAt(cursor int) (client.Task, bool) {
	rows := m.rows()
	if cursor < 0 || cursor >= len(rows) || rows[cursor].header != "" {
		return client.Task{}, false
	}
	return rows[cursor].task, true
}

func (m *model) moveCursor(delta int) {
	rows := m.rows()
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(rows) {
			return
		}
		if rows[i].header == "" {
			m.cursor = i
			return
		}
	}
}

// reqCtx bounds one gateway round trip. Each user action performs exactly
// one request, synchronously; mutation errors are swallowed and local
// state stays unchanged on failure.
func reqCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeAdd:
		return m.updateAdd(keyMsg)
	case modeEdit:
		return m.updateEdit(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "L":
		m.LoggedOut = true
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "a":
		m.mode = modeAdd
		m.catIdx = 0
		m.ti.SetValue("")
		m.ti.Placeholder = "Enter your task..."
		m.ti.Focus()
		return m, textinput.Blink

	case "e":
		if t, ok := m.taskAt(m.cursor); ok && m.ctrl.StartEdit(t.ID) {
			m.mode = modeEdit
			m.catIdx = categoryIndex(m.ctrl.EditCategory)
			m.ti.SetValue(m.ctrl.EditTitle)
			m.ti.CursorEnd()
			m.ti.Focus()
			return m, textinput.Blink
		}

	case " ", "enter":
		if t, ok := m.taskAt(m.cursor); ok {
			ctx, cancel := reqCtx()
			_ = m.ctrl.Toggle(ctx, t.ID)
			cancel()
		}

	case "d":
		if t, ok := m.taskAt(m.cursor); ok {
			ctx, cancel := reqCtx()
			_ = m.ctrl.Delete(ctx, t.ID)
			cancel()
			m.moveCursor(-1)
		}
	}
	return m, nil
}

func (m model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.ti.Blur()
		return m, nil

	case "tab":
		m.catIdx = (m.catIdx + 1) % len(controller.Categories)
		return m, nil

	case "enter":
		m.ctrl.NewTitle = m.ti.Value()
		m.ctrl.NewCategory = controller.Categories[m.catIdx]
		ctx, cancel := reqCtx()
		_ = m.ctrl.Add(ctx)
		cancel()
		m.mode = modeBrowse
		m.ti.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.ctrl.CancelEdit()
		m.mode = modeBrowse
		m.ti.Blur()
		return m, nil

	case "tab":
		m.catIdx = (m.catIdx + 1) % len(controller.Categories)
		return m, nil

	case "enter":
		m.ctrl.EditTitle = m.ti.Value()
		m.ctrl.EditCategory = controller.Categories[m.catIdx]
		ctx, cancel := reqCtx()
		_ = m.ctrl.SaveEdit(ctx)
		cancel()
		m.mode = modeBrowse
		m.ti.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func categoryIndex(cat string) int {
	for i, c := range controller.Categories {
		if c == cat {
			return i
		}
	}
	return 0
}

func (m model) View() string {
	var b strings.Builder

	who := m.ctrl.Identity()
	if who == "" {
		who = "you"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("Taskfy — %s", who)))
	b.WriteString("\n")

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString(mutedStyle.Render("\nNo tasks yet. Press a to add one.\n"))
	}

	for i, r := range rows {
		if r.header != "" {
			b.WriteString(categoryStyle.Render(r.header))
			b.WriteString("\n")
			continue
		}

		box := mutedStyle.Render(boxUnchecked)
		text := r.task.Title
		if r.task.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}

		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, box, text))
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\n" + m.ti.View())
		b.WriteString(mutedStyle.Render(fmt.Sprintf("\ncategory: %s (tab to change, enter to add, esc to cancel)", controller.Categories[m.catIdx])))
	case modeEdit:
		b.WriteString("\n" + m.ti.View())
		b.WriteString(mutedStyle.Render(fmt.Sprintf("\ncategory: %s (tab to change, enter to save, esc to cancel)", controller.Categories[m.catIdx])))
	default:
		b.WriteString(helpStyle.Render("a add · e edit · space toggle · d delete · L logout · q quit"))
	}

	return b.String()
}
