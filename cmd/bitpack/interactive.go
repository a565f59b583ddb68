package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/bitpack/layout"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateEdit
)

type inspectorModel struct {
	err      error
	layout   *layout.Layout
	filename string
	buf      []byte
	input    textinput.Model
	selected int
	state    modelState
}

func newInspectorModel(filename string, l *layout.Layout, buf []byte) *inspectorModel {
	return &inspectorModel{
		filename: filename,
		layout:   l,
		buf:      buf,
		state:    stateBrowse,
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return nil
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateEdit {
		switch key.String() {
		case "enter":
			f := m.layout.Fields[m.selected]
			m.err = writeField(f, m.buf, m.input.Value())
			m.state = stateBrowse
			return m, nil
		case "esc":
			m.state = stateBrowse
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(m.layout.Fields)-1 {
			m.selected++
		}
	case "enter", "e":
		if len(m.layout.Fields) == 0 {
			return m, nil
		}
		f := m.layout.Fields[m.selected]
		ti := textinput.New()
		ti.Prompt = f.Name + ": "
		ti.Placeholder = f.Kind.String()
		ti.Width = 40
		ti.Focus()
		m.input = ti
		m.err = nil
		m.state = stateEdit
		return m, textinput.Blink
	case "z":
		clear(m.buf)
		m.err = nil
	}
	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("bitpack"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	for i, f := range m.layout.Fields {
		sp := f.Span()
		line := fmt.Sprintf("%-24s %-5s %d..%d S=%d E=%d W=%d  %s",
			f.Name, f.Kind, f.StartByte(), f.EndByte(), sp.S, sp.E, sp.W, readField(f, m.buf))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hexStyle.Render(hex.EncodeToString(m.buf)))
	b.WriteString("\n\n")

	if m.state == stateEdit {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		return b.String()
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ select • enter edit • z zero • q quit"))
	return b.String()
}

func runInteractive(filename string, l *layout.Layout, buf []byte) error {
	p := tea.NewProgram(newInspectorModel(filename, l, buf), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
