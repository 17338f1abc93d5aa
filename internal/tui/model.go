package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/services/game"
)

// DefaultPace is the pause before the computer fires its salvo
const DefaultPace = 600 * time.Millisecond

// Options configures the terminal client
type Options struct {
	// Seed is shown in the header so a game can be replayed
	Seed uint64
	// Pace delays the computer's salvo. Zero uses DefaultPace.
	Pace time.Duration
	// Logger is optional; nil discards
	Logger *slog.Logger
}

// computerTurnMsg asks the model to let the computer fire
type computerTurnMsg struct{}

// Model is the bubbletea model driving one game from the human's seat
type Model struct {
	game   *game.Game
	seed   uint64
	pace   time.Duration
	logger *slog.Logger

	cursor   model.Cell
	selected []model.Cell
	status   string

	humanShots    []model.ShotRecord // Human shots fired since the computer last moved
	computerShots []model.ShotRecord // The computer's most recent salvo
}

// New creates a Model for a freshly created game
func New(g *game.Game, opts Options) Model {
	if opts.Pace <= 0 {
		opts.Pace = DefaultPace
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		game:   g,
		seed:   opts.Seed,
		pace:   opts.Pace,
		logger: logger.With(slog.String("component", "tui")),
	}
}

func (m Model) Init() tea.Cmd {
	return m.nextCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case computerTurnMsg:
		return m.computerTurn()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case " ":
		m.toggle()
	case "enter":
		return m.fire()
	}
	return m, nil
}

func (m *Model) move(dRow, dCol int) {
	size := m.game.Snapshot().OpponentBoard.Size
	m.cursor.Row = min(max(m.cursor.Row+dRow, 0), size-1)
	m.cursor.Col = min(max(m.cursor.Col+dCol, 0), size-1)
}

func (m *Model) humanTurn() bool {
	return m.game.Turn().Phase == model.PhaseAwaitingHumanShots
}

// toggle adds or removes the cursor cell from the pending salvo
func (m *Model) toggle() {
	if !m.humanTurn() {
		return
	}
	if i := slices.Index(m.selected, m.cursor); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		m.status = ""
		return
	}
	if m.game.Snapshot().OpponentBoard.IsShot(m.cursor) {
		m.status = fmt.Sprintf("%s has already been shot", m.cursor)
		return
	}
	shots := m.game.Turn().ShotsRemaining
	if len(m.selected) >= shots {
		m.status = fmt.Sprintf("all %d shots already selected", shots)
		return
	}
	m.selected = append(m.selected, m.cursor)
	m.status = ""
}

// fire shoots every selected cell, or the cursor cell when none are selected
func (m Model) fire() (tea.Model, tea.Cmd) {
	if !m.humanTurn() {
		return m, nil
	}

	targets := m.selected
	if len(targets) == 0 {
		targets = []model.Cell{m.cursor}
	}
	m.selected = nil

	var results []string
	for _, cell := range targets {
		if !m.humanTurn() {
			break
		}
		outcome, err := m.game.HumanShot(cell)
		if err != nil {
			m.status = describeError(cell, err)
			m.logger.Debug("shot rejected", slog.String("cell", cell.String()), slog.String("error", err.Error()))
			return m, m.nextCmd()
		}
		m.humanShots = append(m.humanShots, model.ShotRecord{Side: model.SideHuman, Cell: cell, Outcome: outcome})
		results = append(results, fmt.Sprintf("%s %s", cell, outcome))
	}
	m.status = "You fired: " + strings.Join(results, ", ")
	return m, m.nextCmd()
}

func (m Model) computerTurn() (tea.Model, tea.Cmd) {
	if m.game.Turn().Phase != model.PhaseAwaitingComputerShots {
		return m, nil
	}

	records, err := m.game.ComputerTakeTurn()
	if err != nil {
		m.logger.Error("computer turn failed", slog.String("error", err.Error()))
		m.status = "computer turn failed: " + err.Error()
		return m, nil
	}
	m.computerShots = records
	m.humanShots = nil

	results := make([]string, len(records))
	for i, r := range records {
		results[i] = fmt.Sprintf("%s %s", r.Cell, r.Outcome)
	}
	m.status = "Computer fired: " + strings.Join(results, ", ")
	return m, m.nextCmd()
}

// nextCmd schedules the computer's salvo when it is the computer's turn
func (m Model) nextCmd() tea.Cmd {
	if m.game.Turn().Phase != model.PhaseAwaitingComputerShots {
		return nil
	}
	return tea.Tick(m.pace, func(time.Time) tea.Msg {
		return computerTurnMsg{}
	})
}

func describeError(cell model.Cell, err error) string {
	switch {
	case errors.Is(err, model.ErrAlreadyShot):
		return fmt.Sprintf("%s has already been shot", cell)
	case errors.Is(err, model.ErrGameOver):
		return "the game is over"
	default:
		return err.Error()
	}
}

// Run plays the game in the terminal until it ends and the user quits
func Run(g *game.Game, opts Options) error {
	_, err := tea.NewProgram(New(g, opts), tea.WithAltScreen()).Run()
	return err
}
