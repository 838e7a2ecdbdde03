// Package tui is the interactive Bubble Tea front end.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/rockpaper/internal/display"
	"github.com/lox/rockpaper/internal/game"
)

// Model is the Bubble Tea model for a game session. Each submitted move
// finishes the live round and immediately commits the next one, so a digest
// is always on screen before the player is asked to choose.
type Model struct {
	session *game.Session
	logger  *log.Logger

	input textinput.Model
	round *game.Round

	lastResult string
	status     string
	showHelp   bool

	quitting bool
	err      error
}

// NewModel creates the model and commits to the first round.
func NewModel(session *game.Session, logger *log.Logger) (*Model, error) {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d, a move name, 0 to exit, ? for help", session.Moves().Len())
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 64
	ti.Prompt = "Enter your move: "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputStyle

	m := &Model{
		session: session,
		logger:  logger.WithPrefix("tui"),
		input:   ti,
	}
	if err := m.nextRound(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err returns the fatal error that ended the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			return m, m.submit(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(line string) tea.Cmd {
	choice, err := game.ParseChoice(m.session.Moves(), line)
	if err != nil {
		m.status = display.Error(err)
		return nil
	}
	m.status = ""

	switch choice.Kind {
	case game.ChoiceExit:
		m.quitting = true
		return tea.Quit
	case game.ChoiceHelp:
		m.showHelp = !m.showHelp
		return nil
	}

	res, err := m.round.Play(choice.Move)
	if err != nil {
		return m.fail(err)
	}
	m.lastResult = display.Result(res)
	m.showHelp = false

	if err := m.nextRound(); err != nil {
		return m.fail(err)
	}
	return nil
}

func (m *Model) nextRound() error {
	r, err := m.session.StartRound()
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	m.round = r
	m.logger.Debug("Waiting for player move", "round", r.Number())
	return nil
}

func (m *Model) fail(err error) tea.Cmd {
	m.logger.Error("Round failed", "error", err)
	m.err = err
	m.quitting = true
	return tea.Quit
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return display.Summary(m.session.Score()) + "\n"
	}

	var sections []string
	sections = append(sections, display.Title())

	if m.lastResult != "" {
		sections = append(sections, ProofPaneStyle.Render(m.lastResult))
	}

	round := fmt.Sprintf("Round %d\n%s", m.round.Number(), display.Digest(m.round.Digest()))
	sections = append(sections, PaneStyle.Render(round+"\n\n"+display.Menu(m.session.Moves())))

	if m.showHelp {
		sections = append(sections, display.HelpTable(m.session.Table()))
	}
	if m.status != "" {
		sections = append(sections, m.status)
	}
	sections = append(sections, m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// Run starts the Bubble Tea program and blocks until the player exits.
func Run(session *game.Session, logger *log.Logger, opts ...tea.ProgramOption) error {
	m, err := NewModel(session, logger)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return m.Err()
}
