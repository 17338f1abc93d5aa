package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/battleship-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Catalog:
		o.printCatalog(v)
	case GameSummary:
		o.printSummary(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Option is one selectable rule or difficulty
type Option struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
}

// Catalog lists the selectable rules and difficulties
type Catalog struct {
	Rules        []Option `json:"rules"`
	Difficulties []Option `json:"difficulties"`
}

// NewCatalog builds the catalog from the model's enumerations
func NewCatalog() Catalog {
	var c Catalog
	for _, r := range model.ValidRules() {
		c.Rules = append(c.Rules, Option{Name: string(r), DisplayName: r.DisplayName(), Description: r.Description()})
	}
	for _, d := range model.ValidDifficulties() {
		c.Difficulties = append(c.Difficulties, Option{Name: string(d), DisplayName: d.DisplayName(), Description: d.Description()})
	}
	return c
}

// ShipSummary is one ship in the post-game report
type ShipSummary struct {
	Kind string `json:"kind"`
	Size int    `json:"size"`
	Hits int    `json:"hits"`
	Sunk bool   `json:"sunk"`
}

// SideSummary is one side's result
type SideSummary struct {
	ShotsFired int           `json:"shots_fired"`
	Hits       int           `json:"hits"`
	ShipsSunk  int           `json:"ships_sunk"`
	Fleet      []ShipSummary `json:"fleet"`
}

// GameSummary is printed after the terminal client exits
type GameSummary struct {
	ID         string        `json:"id"`
	Seed       uint64        `json:"seed"`
	Rule       string        `json:"rule"`
	Difficulty string        `json:"difficulty"`
	Rounds     int           `json:"rounds"`
	Finished   bool          `json:"finished"`
	Winner     string        `json:"winner,omitempty"`
	Duration   time.Duration `json:"duration_ns,omitempty"`
	Human      SideSummary   `json:"human"`
	Computer   SideSummary   `json:"computer"`
}

// NewGameSummary reports a game from its final snapshot
func NewGameSummary(snap model.Snapshot, seed uint64) GameSummary {
	summary := GameSummary{
		ID:         string(snap.ID),
		Seed:       seed,
		Rule:       string(snap.Rule),
		Difficulty: string(snap.Difficulty),
		Rounds:     snap.Round,
		Finished:   snap.Turn.IsOver(),
		Winner:     string(snap.Turn.Winner),
		Human:      sideSummary(snap.MyStats, snap.MyFleet),
		Computer:   sideSummary(snap.OpponentStats, snap.OpponentFleet),
	}
	if !snap.FinishedAt.IsZero() {
		summary.Duration = snap.FinishedAt.Sub(snap.StartedAt)
	}
	return summary
}

func sideSummary(stats model.SideStats, fleet []model.ShipStatus) SideSummary {
	s := SideSummary{
		ShotsFired: stats.ShotsFired,
		Hits:       stats.Hits,
		ShipsSunk:  stats.ShipsSunk,
	}
	for _, ship := range fleet {
		s.Fleet = append(s.Fleet, ShipSummary{Kind: string(ship.Kind), Size: ship.Size, Hits: ship.Hits, Sunk: ship.Sunk})
	}
	return s
}

func (o *Output) printCatalog(c Catalog) {
	_, _ = fmt.Fprintln(o.w, "Rules:")
	for _, r := range c.Rules {
		_, _ = fmt.Fprintf(o.w, "  %-8s %s\n", r.Name, r.Description)
	}
	_, _ = fmt.Fprintln(o.w, "Difficulties:")
	for _, d := range c.Difficulties {
		_, _ = fmt.Fprintf(o.w, "  %-8s %s\n", d.Name, d.Description)
	}
}

func (o *Output) printSummary(s GameSummary) {
	_, _ = fmt.Fprintf(o.w, "Game: %s (seed %d)\n", s.ID, s.Seed)
	_, _ = fmt.Fprintf(o.w, "Rule: %s  Difficulty: %s  Rounds: %d\n", s.Rule, s.Difficulty, s.Rounds)
	switch {
	case !s.Finished:
		_, _ = fmt.Fprintln(o.w, "Result: abandoned")
	case s.Winner == string(model.SideHuman):
		_, _ = fmt.Fprintln(o.w, "Result: you won")
	default:
		_, _ = fmt.Fprintln(o.w, "Result: the computer won")
	}
	if s.Duration > 0 {
		_, _ = fmt.Fprintf(o.w, "Duration: %s\n", s.Duration.Round(time.Second))
	}
	o.printSide("You", s.Human)
	o.printSide("Computer", s.Computer)
}

func (o *Output) printSide(label string, s SideSummary) {
	_, _ = fmt.Fprintf(o.w, "%s: %d shots, %d hits, %d ships sunk\n", label, s.ShotsFired, s.Hits, s.ShipsSunk)
	for _, ship := range s.Fleet {
		state := "afloat"
		if ship.Sunk {
			state = "sunk"
		}
		_, _ = fmt.Fprintf(o.w, "  - %s: %d/%d hits, %s\n", ship.Kind, ship.Hits, ship.Size, state)
	}
}
