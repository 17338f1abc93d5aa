package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
	"github.com/mcoot/battleship-go/internal/testutil"
)

type ModelSuite struct {
	suite.Suite
}

func TestModelSuite(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

func (s *ModelSuite) newModel(cfg factory.Config) Model {
	app, err := factory.NewTestApp(cfg, testutil.NopLogger())
	s.Require().NoError(err)
	return New(app.Game, Options{Seed: app.Seed})
}

func runes(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

// press feeds keys through Update and returns the final model and command
func (s *ModelSuite) press(m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

// Init tests

func (s *ModelSuite) TestInitHumanFirstWaits() {
	m := s.newModel(factory.Config{})
	s.Nil(m.Init())
}

func (s *ModelSuite) TestInitComputerFirstSchedulesSalvo() {
	m := s.newModel(factory.Config{First: "computer"})
	s.NotNil(m.Init())
}

// Cursor tests

func (s *ModelSuite) TestCursorMovesAndClamps() {
	m := s.newModel(factory.Config{})

	m, _ = s.press(m, tea.KeyMsg{Type: tea.KeyUp}, runes("h"))
	s.Equal(model.Cell{}, m.cursor)

	m, _ = s.press(m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyDown}, runes("l"))
	s.Equal(model.Cell{Row: 3, Col: 1}, m.cursor)

	for range 20 {
		m, _ = s.press(m, runes("l"), runes("j"))
	}
	s.Equal(model.Cell{Row: model.BoardSize - 1, Col: model.BoardSize - 1}, m.cursor)
}

// Selection tests

func (s *ModelSuite) TestSpaceTogglesSelection() {
	m := s.newModel(factory.Config{Rule: "fury"})

	m, _ = s.press(m, space)
	s.Equal([]model.Cell{{}}, m.selected)

	m, _ = s.press(m, space)
	s.Empty(m.selected)
}

func (s *ModelSuite) TestSelectionCappedAtShotsRemaining() {
	m := s.newModel(factory.Config{Rule: "fury"})
	s.Equal(4, m.game.Turn().ShotsRemaining)

	for range 5 {
		m, _ = s.press(m, space, runes("l"))
	}
	s.Len(m.selected, 4)
	s.Contains(m.status, "all 4 shots")
}

// Fire tests

func (s *ModelSuite) TestEnterFiresCursorAndHandsOver() {
	m := s.newModel(factory.Config{})

	m, cmd := s.press(m, enter)
	s.NotNil(cmd)
	s.Equal(model.PhaseAwaitingComputerShots, m.game.Turn().Phase)
	s.Equal(1, m.game.Snapshot().OpponentBoard.ShotCount())
	s.Contains(m.status, "A1")
}

func (s *ModelSuite) TestEnterFiresSelectedSalvo() {
	m := s.newModel(factory.Config{Rule: "fury"})

	for range 4 {
		m, _ = s.press(m, space, runes("l"))
	}
	m, cmd := s.press(m, enter)

	s.NotNil(cmd)
	s.Empty(m.selected)
	s.Len(m.humanShots, 4)
	s.Equal(4, m.game.Snapshot().OpponentBoard.ShotCount())
	s.Equal(model.PhaseAwaitingComputerShots, m.game.Turn().Phase)
}

func (s *ModelSuite) TestPartialSalvoKeepsTurn() {
	m := s.newModel(factory.Config{Rule: "fury"})

	m, cmd := s.press(m, space, runes("l"), space, enter)
	s.Nil(cmd)
	s.Equal(model.PhaseAwaitingHumanShots, m.game.Turn().Phase)
	s.Equal(2, m.game.Turn().ShotsRemaining)
}

func (s *ModelSuite) TestAlreadyShotCellReported() {
	m := s.newModel(factory.Config{})

	m, _ = s.press(m, enter)
	next, _ := m.Update(computerTurnMsg{})
	m = next.(Model)
	s.Require().Equal(model.PhaseAwaitingHumanShots, m.game.Turn().Phase)

	m, cmd := s.press(m, enter)
	s.Nil(cmd)
	s.Contains(m.status, "already been shot")
	s.Equal(1, m.game.Turn().ShotsRemaining)

	m, _ = s.press(m, space)
	s.Empty(m.selected)
}

func (s *ModelSuite) TestKeysIgnoredDuringComputerTurn() {
	m := s.newModel(factory.Config{First: "computer"})

	m, cmd := s.press(m, space, enter)
	s.Nil(cmd)
	s.Empty(m.selected)
	s.Equal(0, m.game.Snapshot().OpponentBoard.ShotCount())
}

// Computer turn tests

func (s *ModelSuite) TestComputerTurnMessage() {
	m := s.newModel(factory.Config{First: "computer"})

	next, cmd := m.Update(computerTurnMsg{})
	m = next.(Model)
	s.Nil(cmd)
	s.Len(m.computerShots, 1)
	s.Equal(model.PhaseAwaitingHumanShots, m.game.Turn().Phase)
	s.Equal(1, m.game.Snapshot().MyBoard.ShotCount())
	s.Contains(m.status, "Computer fired")
}

func (s *ModelSuite) TestComputerTurnMessageOutOfTurnIgnored() {
	m := s.newModel(factory.Config{})

	next, cmd := m.Update(computerTurnMsg{})
	s.Nil(cmd)
	s.Empty(next.(Model).computerShots)
}

// Quit and view tests

func (s *ModelSuite) TestQuit() {
	m := s.newModel(factory.Config{})

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		s.Require().NotNil(cmd)
		s.Equal(tea.QuitMsg{}, cmd())
	}
}

func (s *ModelSuite) TestViewShowsGameState() {
	m := s.newModel(factory.Config{Rule: "charge", Difficulty: "hard"})

	view := m.View()
	s.Contains(view, "Round 1")
	s.Contains(view, "Charge")
	s.Contains(view, "Hard")
	s.Contains(view, "Your turn: 1 shot(s) left")
	s.Contains(view, "Carrier")
}

func (s *ModelSuite) TestViewAfterGameOver() {
	m := s.newModel(factory.Config{})

	// Sweep the enemy board; the computer answers each turn
	for i := 0; i < 4*model.BoardSize*model.BoardSize && !m.game.Turn().IsOver(); i++ {
		if m.game.Turn().Phase == model.PhaseAwaitingComputerShots {
			next, _ := m.Update(computerTurnMsg{})
			m = next.(Model)
			continue
		}
		m.cursor = m.game.Snapshot().OpponentBoard.UnshotCells()[0]
		m, _ = s.press(m, enter)
	}
	s.Require().True(m.game.Turn().IsOver())

	view := m.View()
	s.True(
		strings.Contains(view, "You win!") || strings.Contains(view, "The computer wins."),
	)
	s.Contains(view, "q quit")
}
