package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/battleship-go/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	shipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	hitStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sunkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	waterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	pickStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	recentStyle = lipgloss.NewStyle().Underline(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func glyph(state model.CellState) string {
	switch state {
	case model.CellOccupied:
		return shipStyle.Render("■")
	case model.CellHit:
		return hitStyle.Render("✕")
	case model.CellMiss:
		return missStyle.Render("○")
	case model.CellSunk:
		return sunkStyle.Render("#")
	case model.CellUnknown:
		return waterStyle.Render("·")
	default:
		return waterStyle.Render("~")
	}
}

type cellMarker func(c model.Cell, rendered string) string

func renderBoard(title string, view model.BoardView, mark cellMarker) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n   ")
	for col := range view.Size {
		b.WriteString(headerStyle.Render(fmt.Sprintf("%-2d", col+1)))
	}
	for row := range view.Size {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("%c  ", 'A'+rune(row))))
		for col := range view.Size {
			c := model.Cell{Row: row, Col: col}
			b.WriteString(mark(c, glyph(view.At(c))))
			b.WriteString(" ")
		}
	}
	return boardStyle.Render(b.String())
}

func renderFleet(label string, fleet []model.ShipStatus) string {
	parts := make([]string, len(fleet))
	for i, ship := range fleet {
		name := fmt.Sprintf("%s(%c)", ship.Kind.DisplayName(), ship.Kind.Letter())
		if ship.Sunk {
			parts[i] = sunkStyle.Render(name + " sunk")
		} else {
			parts[i] = name
		}
	}
	return fmt.Sprintf("%s %s", label, strings.Join(parts, "  "))
}

func shotCells(records []model.ShotRecord) []model.Cell {
	cells := make([]model.Cell, len(records))
	for i, r := range records {
		cells[i] = r.Cell
	}
	return cells
}

func (m Model) View() string {
	snap := m.game.Snapshot()

	computerShots := shotCells(m.computerShots)
	own := renderBoard("Your waters", snap.MyBoard, func(c model.Cell, s string) string {
		if slices.Contains(computerShots, c) {
			return recentStyle.Render(s)
		}
		return s
	})

	humanTurn := snap.Turn.Phase == model.PhaseAwaitingHumanShots
	enemy := renderBoard("Enemy waters", snap.OpponentBoard, func(c model.Cell, s string) string {
		switch {
		case humanTurn && c == m.cursor:
			return cursorStyle.Render(s)
		case slices.Contains(m.selected, c):
			return pickStyle.Render("◎")
		default:
			return s
		}
	})

	var b strings.Builder
	b.WriteString(titleStyle.Render("BATTLESHIP"))
	b.WriteString(fmt.Sprintf("  Round %d  Rule: %s  Difficulty: %s  Seed: %d\n",
		snap.Round, snap.Rule.DisplayName(), snap.Difficulty.DisplayName(), m.seed))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, own, "  ", enemy))
	b.WriteString("\n")
	b.WriteString(renderFleet("Your fleet: ", snap.MyFleet))
	b.WriteString("\n")
	b.WriteString(renderFleet("Enemy fleet:", snap.OpponentFleet))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Shots: you %d (%d hits)  computer %d (%d hits)\n",
		snap.MyStats.ShotsFired, snap.MyStats.Hits, snap.OpponentStats.ShotsFired, snap.OpponentStats.Hits))
	b.WriteString("\n")
	b.WriteString(turnLine(snap, len(m.selected)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine(snap.Turn)))
	b.WriteString("\n")
	return b.String()
}

func turnLine(snap model.Snapshot, selected int) string {
	switch snap.Turn.Phase {
	case model.PhaseAwaitingHumanShots:
		return fmt.Sprintf("Your turn: %d shot(s) left, %d selected", snap.Turn.ShotsRemaining, selected)
	case model.PhaseAwaitingComputerShots:
		return fmt.Sprintf("Computer is aiming %d shot(s)...", snap.Turn.ShotsRemaining)
	case model.PhaseGameOver:
		if snap.Turn.Winner == model.SideHuman {
			return hitStyle.Render("You win! The enemy fleet is sunk.")
		}
		return sunkStyle.Render("The computer wins. Your fleet is sunk.")
	default:
		return ""
	}
}

func helpLine(turn model.TurnState) string {
	if turn.IsOver() {
		return "q quit"
	}
	return "arrows/hjkl move  space select  enter fire  q quit"
}
