package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/tape-runtime/config"
	"github.com/wippyai/tape-runtime/engine"
	"github.com/wippyai/tape-runtime/source"
)

const (
	// maxRunSteps bounds a single "run" key press so a program that never
	// halts keeps the UI responsive.
	maxRunSteps = 1_000_000
	tapeWindow  = 16
	codeWindow  = 32
	outputLines = 10
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	opStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateStep modelState = iota
	stateInput
	stateDone
)

type interactiveModel struct {
	err      error
	eng      *engine.Engine
	cfg      *config.Config
	in       *pendingInput
	out      *outputLog
	filename string
	input    textinput.Model
	check    bool
	state    modelState
}

// pendingInput hands the engine the line typed into the debugger.
type pendingInput struct {
	line string
	ok   bool
}

func (p *pendingInput) ReadLine() (string, error) {
	if !p.ok {
		return "", io.EOF
	}
	p.ok = false
	return p.line, nil
}

type outputLog struct {
	lines []string
}

func (o *outputLog) WriteLine(line string) error {
	o.lines = append(o.lines, line)
	return nil
}

func newInteractiveModel(filename string, cfg *config.Config, check bool) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "0-255"
	ti.Prompt = cfg.Input.Prompt
	ti.CharLimit = 16
	ti.Width = 20

	return &interactiveModel{
		cfg:      cfg,
		in:       &pendingInput{},
		out:      &outputLog{},
		filename: filename,
		input:    ti,
		check:    check,
		state:    stateStep,
	}
}

type loadedMsg struct {
	err error
	eng *engine.Engine
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadProgram
}

func (m *interactiveModel) loadProgram() tea.Msg {
	program, err := source.Read(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	if m.check {
		if err := engine.Check(program); err != nil {
			return loadedMsg{err: err}
		}
	}

	eng, err := engine.New(program,
		engine.WithTapeSize(m.cfg.Tape.Size),
		engine.WithInput(m.in),
		engine.WithOutput(m.out),
	)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{eng: eng}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.eng = msg.eng
		m.settle()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.eng == nil {
			if msg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
		if m.state == stateInput {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case "q":
			return m, tea.Quit

		case "s", " ":
			if m.state == stateStep {
				m.step()
			}

		case "r":
			if m.state == stateStep {
				m.runUntilPause()
			}

		case "R":
			m.eng.Reset()
			m.out.lines = nil
			m.err = nil
			m.state = stateStep
			m.settle()
		}
	}

	return m, nil
}

func (m *interactiveModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.in.line = m.input.Value()
		m.in.ok = true
		m.input.SetValue("")
		m.err = m.eng.Step()
		m.in.ok = false
		if m.err != nil {
			// Stay on the ',' and ask again.
			return m, nil
		}
		m.input.Blur()
		m.state = stateStep
		m.settle()
		return m, nil

	case "esc":
		m.input.Blur()
		m.state = stateStep
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// step executes one instruction unless the next one needs input.
func (m *interactiveModel) step() {
	m.err = nil
	if op, ok := m.eng.Next(); ok && op == ',' {
		m.askInput()
		return
	}
	m.err = m.eng.Step()
	m.settle()
}

func (m *interactiveModel) runUntilPause() {
	m.err = nil
	for range maxRunSteps {
		op, ok := m.eng.Next()
		if !ok {
			break
		}
		if op == ',' {
			m.askInput()
			return
		}
		if m.err = m.eng.Step(); m.err != nil {
			break
		}
	}
	m.settle()
}

func (m *interactiveModel) askInput() {
	m.state = stateInput
	m.input.Focus()
}

func (m *interactiveModel) settle() {
	if m.eng.Done() {
		m.state = stateDone
	}
}

func (m *interactiveModel) View() string {
	if m.eng == nil {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
		}
		return "Loading program..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Tape Runner"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	b.WriteString(m.renderProgram())
	b.WriteString("\n\n")
	b.WriteString(m.renderTape())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("pc %d/%d  cursor %d  depth %d  steps %d\n\n",
		m.eng.PC(), len(m.eng.Program()), m.eng.Cursor(), m.eng.Depth(), m.eng.Steps()))

	b.WriteString("Output:\n")
	lines := m.out.lines
	if len(lines) > outputLines {
		lines = lines[len(lines)-outputLines:]
	}
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(resultStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	switch m.state {
	case stateStep:
		b.WriteString(helpStyle.Render("s step • r run • R reset • q quit"))
	case stateInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter submit • esc back"))
	case stateDone:
		b.WriteString(resultStyle.Render("Program finished."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("R reset • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) renderProgram() string {
	program := m.eng.Program()
	pc := m.eng.PC()
	start := max(pc-codeWindow, 0)
	end := min(pc+codeWindow+1, len(program))

	var b strings.Builder
	for i := start; i < end; i++ {
		c := program[i]
		s := string(rune(c))
		switch {
		case c == '\n' || c == '\t' || c == '\r':
			s = " "
		case c >= utf8.RuneSelf:
			// A byte of a multi-byte character; pc may land inside one.
			s = "·"
		}
		switch {
		case i == pc:
			b.WriteString(selectedStyle.Render(s))
		case strings.IndexByte("<>+-,.[]", c) >= 0:
			b.WriteString(opStyle.Render(s))
		default:
			b.WriteString(s)
		}
	}
	if pc >= len(program) {
		b.WriteString(selectedStyle.Render(" "))
	}
	return b.String()
}

func (m *interactiveModel) renderTape() string {
	cursor := m.eng.Cursor()
	start := max(min(cursor-tapeWindow/2, m.eng.TapeSize()-tapeWindow), 0)
	cells := m.eng.Cells(start, start+tapeWindow)

	var b strings.Builder
	for i, c := range cells {
		s := fmt.Sprintf("%3d", c)
		if start+i == cursor {
			b.WriteString(selectedStyle.Render(s))
		} else {
			b.WriteString(cellStyle.Render(s))
		}
		b.WriteByte(' ')
	}
	return b.String()
}

func runInteractive(filename string, cfg *config.Config, check bool) error {
	p := tea.NewProgram(newInteractiveModel(filename, cfg, check), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
